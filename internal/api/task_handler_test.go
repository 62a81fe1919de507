package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claydesk/flowtest-api/internal/api"
	"github.com/claydesk/flowtest-api/internal/domain"
	"github.com/claydesk/flowtest-api/internal/store/memstore"
)

// newTaskRouter wires a TaskHandler onto a bare router. Auth middleware is
// exercised separately; these tests cover handler behavior.
func newTaskRouter(t *testing.T) (*chi.Mux, *memstore.TaskStore) {
	t.Helper()
	taskStore := memstore.NewTaskStore()
	handler := api.NewTaskHandler(taskStore)

	r := chi.NewRouter()
	r.Post("/api/v1/tasks", handler.Create)
	r.Get("/api/v1/tasks", handler.List)
	r.Get("/api/v1/tasks/{id}", handler.Get)
	r.Put("/api/v1/tasks/{id}", handler.Update)
	r.Delete("/api/v1/tasks/{id}", handler.Delete)
	r.Patch("/api/v1/tasks/{id}/complete", handler.Complete)
	return r, taskStore
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) domain.Task {
	t.Helper()
	var task domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	return task
}

func TestCreateTask(t *testing.T) {
	r, _ := newTaskRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: "write docs"})
	require.Equal(t, http.StatusOK, rec.Code)

	task := decodeTask(t, rec)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "write docs", task.Title)
	assert.Equal(t, "medium", task.Priority, "default priority applies")
	assert.False(t, task.Completed)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskValidation(t *testing.T) {
	r, _ := newTaskRouter(t)

	t.Run("missing title", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/tasks", map[string]string{"description": "no title"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation error")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request format")
	})
}

func TestListTasks(t *testing.T) {
	r, _ := newTaskRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty store lists as empty array")

	for i := 0; i < 3; i++ {
		doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: fmt.Sprintf("task %d", i)})
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(3), tasks[2].ID)
}

func TestGetTask(t *testing.T) {
	r, _ := newTaskRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: "find me"})

	t.Run("found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/tasks/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "find me", decodeTask(t, rec).Title)
	})

	t.Run("missing", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/tasks/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task not found")
	})

	t.Run("non-integer id", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/tasks/abc", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task not found")
	})
}

func TestUpdateTask(t *testing.T) {
	r, _ := newTaskRouter(t)
	created := decodeTask(t, doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: "A"}))

	rec := doJSON(t, r, http.MethodPut, "/api/v1/tasks/1", api.TaskRequest{Title: "B", Priority: "high"})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeTask(t, rec)
	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	t.Run("missing task", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/api/v1/tasks/99", api.TaskRequest{Title: "B"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/api/v1/tasks/1", map[string]string{"priority": "low"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	r, _ := newTaskRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: "doomed"})

	rec := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task deleted successfully")

	// Deleted task is gone
	rec = doJSON(t, r, http.MethodGet, "/api/v1/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete is idempotent, even for IDs that never existed
	for _, path := range []string{"/api/v1/tasks/1", "/api/v1/tasks/99", "/api/v1/tasks/abc"} {
		rec = doJSON(t, r, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "delete %s", path)
		assert.Contains(t, rec.Body.String(), "Task deleted successfully")
	}
}

func TestCompleteTask(t *testing.T) {
	r, _ := newTaskRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks", api.TaskRequest{Title: "finish line"})

	rec := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/1/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeTask(t, rec).Completed)

	t.Run("missing task", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/99/complete", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task not found")
	})
}
