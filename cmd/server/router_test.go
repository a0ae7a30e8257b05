package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-todo/internal/config"
)

// newTestApplication builds an application with test configuration and a
// fresh in-memory store.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:      8000,
			LogLevel:  "error",
			StaticDir: t.TempDir(),
		},
	}

	return newApplication(cfg, slog.Default())
}

func TestRouter_TaskLifecycle(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	client := server.Client()

	post := func(body string) *http.Response {
		resp, err := client.Post(server.URL+"/tasks", "application/json",
			bytes.NewBufferString(body))
		require.NoError(t, err)
		return resp
	}

	del := func(path string) *http.Response {
		req, err := http.NewRequest(http.MethodDelete, server.URL+path, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	decode := func(resp *http.Response, v interface{}) {
		defer func() {
			require.NoError(t, resp.Body.Close())
		}()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}

	// Fresh server starts healthy and empty, with the counter at 1.
	resp, err := client.Get(server.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]interface{}
	decode(resp, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(0), health["tasks_count"])
	assert.Equal(t, float64(1), health["next_id"])

	// Create two tasks.
	resp = post(`{"text":"  buy milk  "}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decode(resp, &created)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "buy milk", created["text"])

	resp = post(`{"text":"walk the dog"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// Root endpoint reports the current count.
	resp, err = client.Get(server.URL + "/")
	require.NoError(t, err)
	var info map[string]interface{}
	decode(resp, &info)
	assert.Equal(t, "Session To-Do List API", info["message"])
	assert.Equal(t, float64(2), info["total_tasks"])

	// Delete the first task; remaining order is preserved.
	resp = del("/tasks/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted map[string]interface{}
	decode(resp, &deleted)
	assert.Equal(t, "Task with id 1 deleted successfully", deleted["message"])

	resp, err = client.Get(server.URL + "/tasks")
	require.NoError(t, err)
	var tasks []map[string]interface{}
	decode(resp, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, float64(2), tasks[0]["id"])
	assert.Equal(t, "walk the dog", tasks[0]["text"])

	// Deleting the same id again is a 404, and the store is untouched.
	resp = del("/tasks/1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var notFound map[string]interface{}
	decode(resp, &notFound)
	assert.Equal(t, "Task with id 1 not found", notFound["error"])

	resp, err = client.Get(server.URL + "/health")
	require.NoError(t, err)
	decode(resp, &health)
	assert.Equal(t, float64(1), health["tasks_count"])
	assert.Equal(t, float64(3), health["next_id"])
}

func TestRouter_ValidationErrors(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "missing_text",
			body:           `{}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "whitespace_only_text",
			body:           `{"text":"   "}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed_json",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := server.Client().Post(server.URL+"/tasks", "application/json",
				bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer func() {
				require.NoError(t, resp.Body.Close())
			}()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			// A rejected request must not corrupt the store.
			health, err := server.Client().Get(server.URL + "/health")
			require.NoError(t, err)
			defer func() {
				require.NoError(t, health.Body.Close())
			}()
			var status map[string]interface{}
			require.NoError(t, json.NewDecoder(health.Body).Decode(&status))
			assert.Equal(t, float64(0), status["tasks_count"])
			assert.Equal(t, float64(1), status["next_id"])
		})
	}
}

func TestRouter_CORSHeaders(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.setupRouter())
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
