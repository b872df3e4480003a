package repository_test

import (
	"errors"
	"sync"
	"testing"

	"todo-api/models"
	"todo-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestMemoryTodoCreate(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	first, err := repo.Create(models.CreateTodoRequest{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "buy milk", first.Text)
	assert.False(t, first.Completed)

	second, err := repo.Create(models.CreateTodoRequest{Text: "walk the dog"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryTodoFind(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	created, err := repo.Create(models.CreateTodoRequest{Text: "buy milk"})
	require.NoError(t, err)

	found, err := repo.Find(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created, found)

	// Missing ids are not an error, just an empty result.
	missing, err := repo.Find(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryTodoAll(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	all, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		_, err := repo.Create(models.CreateTodoRequest{Text: text})
		require.NoError(t, err)
	}

	all, err = repo.All()
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Insertion order is preserved.
	for i, todo := range all {
		assert.Equal(t, int64(i+1), todo.ID)
		assert.Equal(t, texts[i], todo.Text)
	}
}

func TestMemoryTodoUpdate(t *testing.T) {
	tests := []struct {
		name    string
		payload models.UpdateTodoRequest
		want    models.Todo
	}{
		{
			name:    "text only leaves completed untouched",
			payload: models.UpdateTodoRequest{Text: strPtr("buy oat milk")},
			want:    models.Todo{ID: 1, Text: "buy oat milk", Completed: false},
		},
		{
			name:    "completed only leaves text untouched",
			payload: models.UpdateTodoRequest{Completed: boolPtr(true)},
			want:    models.Todo{ID: 1, Text: "buy milk", Completed: true},
		},
		{
			name: "both fields",
			payload: models.UpdateTodoRequest{
				Text:      strPtr("done shopping"),
				Completed: boolPtr(true),
			},
			want: models.Todo{ID: 1, Text: "done shopping", Completed: true},
		},
		{
			name:    "empty payload changes nothing",
			payload: models.UpdateTodoRequest{},
			want:    models.Todo{ID: 1, Text: "buy milk", Completed: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryTodoRepository()
			_, err := repo.Create(models.CreateTodoRequest{Text: "buy milk"})
			require.NoError(t, err)

			updated, err := repo.Update(1, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *updated)

			// The stored copy matches what Update returned.
			found, err := repo.Find(1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *found)
		})
	}
}

func TestMemoryTodoUpdateNotFound(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	_, err := repo.Update(42, models.UpdateTodoRequest{Text: strPtr("nope")})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMemoryTodoDelete(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	created, err := repo.Create(models.CreateTodoRequest{Text: "buy milk"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	found, err := repo.Find(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(created.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMemoryTodoIDsNotReusedAfterDelete(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	first, err := repo.Create(models.CreateTodoRequest{Text: "first"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(first.ID))

	second, err := repo.Create(models.CreateTodoRequest{Text: "second"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

// TestMemoryTodoConcurrentCreate verifies ids stay unique when many
// goroutines create todos at once.
func TestMemoryTodoConcurrentCreate(t *testing.T) {
	repo := repository.NewMemoryTodoRepository()

	const goroutines = 50
	const perGoroutine = 20

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines*perGoroutine)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				todo, err := repo.Create(models.CreateTodoRequest{Text: "concurrent"})
				assert.NoError(t, err)
				ids <- todo.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, goroutines*perGoroutine)
}

func TestMemoryLabelCRUD(t *testing.T) {
	repo := repository.NewMemoryLabelRepository()

	label, err := repo.Create(models.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), label.ID)
	assert.Equal(t, "urgent", label.Name)

	_, err = repo.Create(models.CreateLabelRequest{Name: "home"})
	require.NoError(t, err)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "urgent", all[0].Name)
	assert.Equal(t, "home", all[1].Name)

	require.NoError(t, repo.Delete(label.ID))

	all, err = repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = repo.Delete(label.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
