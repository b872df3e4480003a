package database

import (
	"fmt"

	"todo-api/models"
	"todo-api/repository"
)

// LabelStore implements repository.LabelRepository over the labels table.
type LabelStore struct {
	db *DB
}

var _ repository.LabelRepository = (*LabelStore)(nil)

func NewLabelStore(db *DB) *LabelStore {
	return &LabelStore{db: db}
}

func (s *LabelStore) Create(payload models.CreateLabelRequest) (*models.Label, error) {
	label := models.Label{Name: payload.Name}

	if s.db.driver == DriverPostgres {
		err := s.db.QueryRow(
			`INSERT INTO labels (name) VALUES ($1) RETURNING id`,
			label.Name,
		).Scan(&label.ID)
		if err != nil {
			return nil, fmt.Errorf("insert label: %w", err)
		}
		return &label, nil
	}

	res, err := s.db.Exec(`INSERT INTO labels (name) VALUES (?)`, label.Name)
	if err != nil {
		return nil, fmt.Errorf("insert label: %w", err)
	}
	label.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert label: %w", err)
	}

	return &label, nil
}

func (s *LabelStore) All() ([]models.Label, error) {
	rows, err := s.db.Query(`
		SELECT id, name
		FROM labels
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select labels: %w", err)
	}
	defer rows.Close()

	labels := make([]models.Label, 0)
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

func (s *LabelStore) Delete(id int64) error {
	res, err := s.db.Exec(s.db.rebind(`DELETE FROM labels WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("label %d: %w", id, repository.ErrNotFound)
	}

	return nil
}
