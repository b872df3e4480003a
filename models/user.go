package models

// User exists only for the demo /users endpoint; there is no user storage.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}
