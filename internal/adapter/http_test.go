// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.signature"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())

	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Authorization", "Bearer "+testToken)
		_, _ = utils.WriteJSON(w, models.UserResponse{
			Success: true,
			User:    models.User{UserID: "u1", Email: req.Email, Name: req.Name},
		}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_Conflict_KeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Email already in use!", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Email already in use!", err.Error())
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+testToken)
		_, _ = utils.WriteJSON(w, models.UserResponse{Success: true, User: models.User{UserID: "u1"}}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "invalid email or password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestLogin_MissingTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.UserResponse{Success: true}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "x"})

	assert.ErrorIs(t, err, ErrNoTokenInResponse)
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/logout", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		_, _ = utils.WriteJSON(w, models.MessageResponse{Success: true}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

func TestCurrentUser_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = utils.WriteJSON(w, models.UserResponse{Success: true, User: models.User{UserID: "u1", Email: "a@b.co"}}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("  " + testToken + "\n")
	got, err := a.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", got.Email)
}

// ── Tasks ────────────────────────────────────────────────────────────────────

func TestListTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.TaskListResponse{
			Success: true,
			Tasks:   []models.Task{{TaskID: "t2", Title: "second"}, {TaskID: "t1", Title: "first"}},
		}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	tasks, err := a.ListTasks(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t2", tasks[0].TaskID)
}

func TestCreateTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.CreateTaskRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_, _ = utils.WriteJSON(w, models.TaskResponse{
			Success: true,
			Task:    models.Task{TaskID: "t1", Title: req.Title},
		}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	task, err := a.CreateTask(context.Background(), models.CreateTaskRequest{Title: "Buy milk"})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
}

func TestCreateTask_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Title is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTask(context.Background(), models.CreateTaskRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Title is required", err.Error())
}

func TestGetTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/t404", r.URL.Path)
		writeError(w, "Task not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetTask(context.Background(), "t404")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTask_SendsOnlyPresentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/t1", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"completed": true}, body)

		_, _ = utils.WriteJSON(w, models.TaskResponse{
			Success: true,
			Task:    models.Task{TaskID: "t1", Title: "Buy milk", Completed: true},
		}, http.StatusOK)
	}))
	defer srv.Close()

	done := true
	a := newTestAdapter(t, srv.URL)
	task, err := a.UpdateTask(context.Background(), "t1", models.UpdateTaskRequest{Completed: &done})

	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestDeleteTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/tasks/t1" {
			_, _ = utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "Task deleted successfully"}, http.StatusOK)
			return
		}
		writeError(w, "Task not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	assert.NoError(t, a.DeleteTask(context.Background(), "t1"))
	assert.ErrorIs(t, a.DeleteTask(context.Background(), "t2"), ErrNotFound)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestServerError_FallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListTasks(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusText(http.StatusTeapot), err.Error())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusTeapot, serverErr.StatusCode)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Task not found", errorMessage([]byte(`{"error":"Task not found"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("plain text\n")))
	assert.Equal(t, `{"message":"x"}`, errorMessage([]byte(`{"message":"x"}`)))
	assert.Empty(t, errorMessage(nil))
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
