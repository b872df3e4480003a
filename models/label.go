package models

// Label is a tag that can be attached to todos by a frontend. Only
// create/list/delete are exposed over HTTP.
type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateLabelRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
