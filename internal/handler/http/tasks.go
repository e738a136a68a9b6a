// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

const taskIDParam = "id"

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingTasks)
		return
	}

	utils.WriteJSON(w, models.TaskListResponse{Success: true, Tasks: tasks}, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	var req models.CreateTaskRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, app.MsgErrorCreatingTasks)
		return
	}

	log.Debug().Str("task_id", task.TaskID).Msg("task created")
	utils.WriteJSON(w, models.TaskResponse{Success: true, Task: task}, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), userID, chi.URLParam(r, taskIDParam))
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingTask)
		return
	}

	utils.WriteJSON(w, models.TaskResponse{Success: true, Task: task}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	var req models.UpdateTaskRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), userID, chi.URLParam(r, taskIDParam), req)
	if err != nil {
		writeError(w, r, err, app.MsgErrorUpdatingTask)
		return
	}

	utils.WriteJSON(w, models.TaskResponse{Success: true, Task: task}, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	taskID := chi.URLParam(r, taskIDParam)
	if err := h.services.TaskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		writeError(w, r, err, app.MsgErrorDeletingTask)
		return
	}

	log.Debug().Str("task_id", taskID).Msg("task deleted")
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgTaskDeleted}, http.StatusOK)
}
