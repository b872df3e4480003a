package repository

import "todo-api/models"

// TodoRepository is the storage contract for todos. Both backends (memory
// and database) satisfy it with identical observable behavior; only the
// failure modes differ, since the database backend can also fail with a
// connectivity error.
type TodoRepository interface {
	// Create stores a new todo with the next unused id and returns it.
	Create(payload models.CreateTodoRequest) (*models.Todo, error)
	// Find returns the todo with the given id, or nil if it does not exist.
	// A missing todo is not an error.
	Find(id int64) (*models.Todo, error)
	// All returns every stored todo.
	All() ([]models.Todo, error)
	// Update applies the non-nil fields of payload to the stored todo and
	// returns the result. Returns ErrNotFound if the id is absent.
	Update(id int64, payload models.UpdateTodoRequest) (*models.Todo, error)
	// Delete removes the todo. Returns ErrNotFound if the id is absent.
	Delete(id int64) error
}

// LabelRepository is the storage contract for labels. Labels are never
// updated in place, so only create/list/delete are part of the contract.
type LabelRepository interface {
	Create(payload models.CreateLabelRequest) (*models.Label, error)
	All() ([]models.Label, error)
	Delete(id int64) error
}
