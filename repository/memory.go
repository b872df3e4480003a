package repository

import (
	"fmt"
	"sort"
	"sync"

	"todo-api/models"
)

// MemoryTodoRepository keeps todos in a map guarded by a reader/writer
// lock. Ids are assigned from a counter that only ever increases, so they
// stay unique for the lifetime of the process even after deletes.
type MemoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[int64]models.Todo
	nextID int64
}

var _ TodoRepository = (*MemoryTodoRepository)(nil)

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		todos: make(map[int64]models.Todo),
	}
}

func (r *MemoryTodoRepository) Create(payload models.CreateTodoRequest) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	todo := models.Todo{
		ID:        r.nextID,
		Text:      payload.Text,
		Completed: false,
	}
	r.todos[todo.ID] = todo

	return &todo, nil
}

func (r *MemoryTodoRepository) Find(id int64) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (r *MemoryTodoRepository) All() ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]models.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}
	// Ids are monotonic, so ascending id equals insertion order.
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })

	return todos, nil
}

func (r *MemoryTodoRepository) Update(id int64, payload models.UpdateTodoRequest) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}

	if payload.Text != nil {
		todo.Text = *payload.Text
	}
	if payload.Completed != nil {
		todo.Completed = *payload.Completed
	}
	r.todos[id] = todo

	return &todo, nil
}

func (r *MemoryTodoRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	delete(r.todos, id)

	return nil
}

// MemoryLabelRepository is the label counterpart of MemoryTodoRepository.
type MemoryLabelRepository struct {
	mu     sync.RWMutex
	labels map[int64]models.Label
	nextID int64
}

var _ LabelRepository = (*MemoryLabelRepository)(nil)

func NewMemoryLabelRepository() *MemoryLabelRepository {
	return &MemoryLabelRepository{
		labels: make(map[int64]models.Label),
	}
}

func (r *MemoryLabelRepository) Create(payload models.CreateLabelRequest) (*models.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	label := models.Label{
		ID:   r.nextID,
		Name: payload.Name,
	}
	r.labels[label.ID] = label

	return &label, nil
}

func (r *MemoryLabelRepository) All() ([]models.Label, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]models.Label, 0, len(r.labels))
	for _, label := range r.labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })

	return labels, nil
}

func (r *MemoryLabelRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.labels[id]; !ok {
		return fmt.Errorf("label %d: %w", id, ErrNotFound)
	}
	delete(r.labels, id)

	return nil
}
