package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workmemory/worklog-backend/config"
	"github.com/workmemory/worklog-backend/internal/bootstrap"
	"github.com/workmemory/worklog-backend/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "worklog.db")}
	db, err := sqlite.NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "worklog-backend",
		Version:     "test",
		DB:          db,
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// create
	w := do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"title":       "fix bug",
		"context":     "stack trace attached",
		"next_action": "reproduce locally",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	task := decode(t, w)["task"].(map[string]any)
	assert.Equal(t, "active", task["status"])
	assert.Equal(t, "medium", task["priority"])
	id := int64(task["id"].(float64))

	// get
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// partial update
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", id), gin.H{"status": "paused"})
	require.Equal(t, http.StatusOK, w.Code)
	task = decode(t, w)["task"].(map[string]any)
	assert.Equal(t, "paused", task["status"])
	assert.Equal(t, "fix bug", task["title"], "omitted fields untouched")

	// invalid enum
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", id), gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// delete, then delete again
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "t", "project_id": 999})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/tasks/9000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/tasks/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectIDPresenceOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/projects", gin.H{"name": "website"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decode(t, w)["project"].(map[string]any)
	projectID := int64(project["id"].(float64))

	w = do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "fix bug", "project_id": projectID})
	require.Equal(t, http.StatusCreated, w.Code)
	task := decode(t, w)["task"].(map[string]any)
	id := int64(task["id"].(float64))

	// omitted project_id keeps the association
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", id), gin.H{"title": "still filed"})
	require.Equal(t, http.StatusOK, w.Code)
	task = decode(t, w)["task"].(map[string]any)
	require.NotNil(t, task["project_id"])

	// explicit null detaches
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", id), gin.H{"project_id": nil})
	require.Equal(t, http.StatusOK, w.Code)
	task = decode(t, w)["task"].(map[string]any)
	assert.Nil(t, task["project_id"])
}

func TestProjectEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/projects", gin.H{"name": "x"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decode(t, w)["project"].(map[string]any)
	projectID := int64(project["id"].(float64))

	// duplicate
	w = do(t, r, http.MethodPost, "/api/v1/projects", gin.H{"name": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// referenced project cannot be deleted
	w = do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "t", "project_id": projectID})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", projectID), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode(t, w)["projects"].([]any)
	assert.Len(t, projects, 1)
}

func TestNoteEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/tasks", gin.H{"title": "fix bug"})
	require.Equal(t, http.StatusCreated, w.Code)
	task := decode(t, w)["task"].(map[string]any)
	id := int64(task["id"].(float64))

	for _, noteType := range []string{"blocker", "decision", "snapshot"} {
		w = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/notes", id), gin.H{
			"note_type": noteType,
			"body":      "entry " + noteType,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// bad type
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/notes", id), gin.H{
		"note_type": "comment", "body": "b",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// chronological log
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/notes", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := decode(t, w)["notes"].([]any)
	require.Len(t, notes, 3)
	assert.Equal(t, "blocker", notes[0].(map[string]any)["note_type"])

	// latest window, newest first
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/notes?limit=2", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes = decode(t, w)["notes"].([]any)
	require.Len(t, notes, 2)
	assert.Equal(t, "snapshot", notes[0].(map[string]any)["note_type"])

	// notes for a missing task
	w = do(t, r, http.MethodGet, "/api/v1/tasks/9000/notes", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResumeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/resume", nil)
	require.Equal(t, http.StatusNotFound, w.Code, "nothing to resume yet")

	w = do(t, r, http.MethodPost, "/api/v1/capture", gin.H{
		"title":        "oauth token exchange",
		"context":      "pasted analysis",
		"next_action":  "add depth limit",
		"project_name": "identity",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	task := out["task"].(map[string]any)
	assert.Equal(t, "oauth token exchange", task["title"])
	latest := out["latest_notes"].([]any)
	require.Len(t, latest, 1)
	assert.Equal(t, "snapshot", latest[0].(map[string]any)["note_type"])
}
