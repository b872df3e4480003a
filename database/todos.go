package database

import (
	"database/sql"
	"fmt"

	"todo-api/models"
	"todo-api/repository"
)

// TodoStore implements repository.TodoRepository on top of a relational
// database. Every operation is a single statement; NotFound is synthesized
// when an UPDATE or DELETE touches zero rows.
type TodoStore struct {
	db *DB
}

var _ repository.TodoRepository = (*TodoStore)(nil)

func NewTodoStore(db *DB) *TodoStore {
	return &TodoStore{db: db}
}

func (s *TodoStore) Create(payload models.CreateTodoRequest) (*models.Todo, error) {
	todo := models.Todo{Text: payload.Text, Completed: false}

	if s.db.driver == DriverPostgres {
		err := s.db.QueryRow(
			`INSERT INTO todos (text, completed) VALUES ($1, $2) RETURNING id`,
			todo.Text, todo.Completed,
		).Scan(&todo.ID)
		if err != nil {
			return nil, fmt.Errorf("insert todo: %w", err)
		}
		return &todo, nil
	}

	res, err := s.db.Exec(
		`INSERT INTO todos (text, completed) VALUES (?, ?)`,
		todo.Text, todo.Completed,
	)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	todo.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	return &todo, nil
}

func (s *TodoStore) Find(id int64) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.QueryRow(s.db.rebind(`
		SELECT id, text, completed
		FROM todos WHERE id = ?
	`), id).Scan(&todo.ID, &todo.Text, &todo.Completed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select todo: %w", err)
	}

	return &todo, nil
}

func (s *TodoStore) All() ([]models.Todo, error) {
	rows, err := s.db.Query(`
		SELECT id, text, completed
		FROM todos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Completed); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (s *TodoStore) Update(id int64, payload models.UpdateTodoRequest) (*models.Todo, error) {
	// NULL payload fields keep the stored value.
	res, err := s.db.Exec(s.db.rebind(`
		UPDATE todos SET
			text = COALESCE(?, text),
			completed = COALESCE(?, completed)
		WHERE id = ?
	`), payload.Text, payload.Completed, id)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("todo %d: %w", id, repository.ErrNotFound)
	}

	todo, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, fmt.Errorf("todo %d: %w", id, repository.ErrNotFound)
	}

	return todo, nil
}

func (s *TodoStore) Delete(id int64) error {
	res, err := s.db.Exec(s.db.rebind(`DELETE FROM todos WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("todo %d: %w", id, repository.ErrNotFound)
	}

	return nil
}
