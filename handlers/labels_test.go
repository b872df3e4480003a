package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-api/models"
	"todo-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLabelEndpoint(t *testing.T) {
	fiberApp := newMemoryApp()

	resp, err := fiberApp.Test(jsonRequest(http.MethodPost, "/labels", map[string]interface{}{
		"name": "urgent",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var label models.Label
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&label))
	assert.Equal(t, models.Label{ID: 1, Name: "urgent"}, label)
}

func TestCreateLabelEndpointBadRequest(t *testing.T) {
	fiberApp := newMemoryApp()

	resp, err := fiberApp.Test(jsonRequest(http.MethodPost, "/labels", map[string]interface{}{}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllLabelsEndpoint(t *testing.T) {
	labels := repository.NewMemoryLabelRepository()
	fiberApp := newTestApp(repository.NewMemoryTodoRepository(), labels)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/labels", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.Label
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)

	for _, name := range []string{"urgent", "home"} {
		_, err := labels.Create(models.CreateLabelRequest{Name: name})
		require.NoError(t, err)
	}

	resp, err = fiberApp.Test(httptest.NewRequest(http.MethodGet, "/labels", nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "urgent", list[0].Name)
}

func TestDeleteLabelEndpoint(t *testing.T) {
	labels := repository.NewMemoryLabelRepository()
	fiberApp := newTestApp(repository.NewMemoryTodoRepository(), labels)

	_, err := labels.Create(models.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodDelete, "/labels/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = fiberApp.Test(httptest.NewRequest(http.MethodDelete, "/labels/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	all, err := labels.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
