package models

// Todo is a single todo item. The ID is assigned by the repository on
// creation and never changes afterwards.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CreateTodoRequest is the payload for creating a todo. New todos always
// start with Completed = false.
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,min=1,max=100"`
}

// UpdateTodoRequest is the payload for a partial update. Nil fields leave
// the stored value unchanged.
type UpdateTodoRequest struct {
	Text      *string `json:"text" validate:"omitempty,min=1,max=100"`
	Completed *bool   `json:"completed"`
}
