// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_TaskResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	body := models.TaskResponse{Success: true, Task: models.Task{TaskID: "t1", Title: "Buy milk"}}

	n, err := WriteJSON(rec, body, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, rec.Body.Len(), n)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"title":"Buy milk"`)
}

func TestWriteJSON_ErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, models.ErrorResponse{Error: "Task not found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		noBody    bool
		wantTitle string
		wantErr   error
		anyErr    bool
	}{
		{name: "valid", body: `{"title":"Buy milk"}`, wantTitle: "Buy milk"},
		{name: "trailing whitespace", body: "{\"title\":\"Buy milk\"}\n ", wantTitle: "Buy milk"},
		{name: "no body", noBody: true, wantErr: ErrEmptyBody},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"title":`, anyErr: true},
		{name: "wrong type", body: `{"title":42}`, anyErr: true},
		{name: "two values", body: `{"title":"a"}{"title":"b"}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(tt.body))
			if tt.noBody {
				r.Body = http.NoBody
			}

			var req models.CreateTaskRequest
			err := ReadJSON(r, &req)

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantTitle, req.Title)
			}
		})
	}
}
