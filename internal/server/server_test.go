package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/api"
	"tasktrack/internal/config"
	"tasktrack/internal/domain"
	"tasktrack/internal/repository/jsonfile"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := jsonfile.New(filepath.Join(t.TempDir(), "tasks.json"), jsonfile.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.NewConfig()
	srv := New(cfg, api.New(store), nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func createTask(t *testing.T, ts *httptest.Server, name, due, priority string) int64 {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/v1/tasks", map[string]any{
		"name":     name,
		"due_date": due,
		"priority": priority,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return int64(body["id"].(float64))
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestServer_CreateTask(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/v1/tasks", map[string]any{
		"name":     "Book dentist",
		"due_date": "2026-09-15",
		"priority": "High",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Book dentist", body["name"])
	assert.Equal(t, "2026-09-15", body["due_date"])
	assert.Equal(t, "High", body["priority"])
	assert.Equal(t, false, body["completed"])
	assert.NotZero(t, body["id"])
}

func TestServer_CreateTask_BadInput(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Bad date", map[string]any{"name": "X", "due_date": "15/09/2026", "priority": "High"}},
		{"Bad priority", map[string]any{"name": "X", "due_date": "2026-09-15", "priority": "Urgent"}},
		{"Empty name", map[string]any{"name": "", "due_date": "2026-09-15", "priority": "High"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, ts.URL+"/v1/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestServer_GetTask(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "Fetch me", "2026-09-01", "Low")

	resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Fetch me", body["name"])
}

func TestServer_GetTask_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestServer_GetTask_BadID(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_ListTasks_Filters(t *testing.T) {
	ts := newTestServer(t)
	today := time.Now().Format(domain.DateFormat)
	future := time.Now().AddDate(0, 1, 0).Format(domain.DateFormat)

	createTask(t, ts, "Due today", today, "High")
	createTask(t, ts, "Far out", future, "Low")

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks?date=today", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Due today", tasks[0].(map[string]any)["name"])

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/v1/tasks?priority=Low", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks = body["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Far out", tasks[0].(map[string]any)["name"])

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/v1/tasks?date=someday", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_UpdateTask(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "Old name", "2026-09-01", "Low")

	resp, body := doJSON(t, http.MethodPatch, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), map[string]any{
		"name":     "New name",
		"priority": "High",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "New name", body["name"])
	assert.Equal(t, "High", body["priority"])
	// Unchanged fields survive the partial update
	assert.Equal(t, "2026-09-01", body["due_date"])
}

func TestServer_UpdateTask_EmptyBody(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "Task", "2026-09-01", "Low")

	resp, _ := doJSON(t, http.MethodPatch, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_DeleteTask(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "Doomed", "2026-09-01", "Low")

	resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_CompleteTask(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "Finish me", "2026-09-01", "Medium")

	// Empty body defaults to completed=true
	resp, body := doJSON(t, http.MethodPost, fmt.Sprintf("%s/v1/tasks/%d/complete", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["completed"])

	resp, body = doJSON(t, http.MethodPost, fmt.Sprintf("%s/v1/tasks/%d/complete", ts.URL, id), map[string]any{"completed": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["completed"])
}

func TestServer_OverdueTasks(t *testing.T) {
	ts := newTestServer(t)
	past := time.Now().AddDate(0, 0, -3).Format(domain.DateFormat)
	future := time.Now().AddDate(0, 0, 3).Format(domain.DateFormat)

	createTask(t, ts, "Late", past, "High")
	createTask(t, ts, "On track", future, "High")

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks/overdue", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]any)
	assert.Equal(t, "Late", task["name"])
	assert.Equal(t, true, task["overdue"])
}

func TestServer_OverdueFlagUsesClock(t *testing.T) {
	ts := newTestServer(t)
	due := time.Now().AddDate(0, 0, 5)
	id := createTask(t, ts, "Pinned", due.Format(domain.DateFormat), "Medium")

	original := timeNow
	t.Cleanup(func() { timeNow = original })

	// One day before the due date the task is on track
	timeNow = func() time.Time { return due.AddDate(0, 0, -1) }
	resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["overdue"])

	// One day after it is overdue
	timeNow = func() time.Time { return due.AddDate(0, 0, 1) }
	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/v1/tasks/%d", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["overdue"])
}

func TestServer_CountTasks(t *testing.T) {
	ts := newTestServer(t)
	id := createTask(t, ts, "One", "2026-09-01", "Low")
	createTask(t, ts, "Two", "2026-09-01", "Low")

	resp, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/v1/tasks/%d/complete", ts.URL, id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks/counts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["active"])
	assert.Equal(t, float64(1), body["completed"])
}

func TestServer_ServesUI(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ui/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
