// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService implements TaskService on top of a TaskRepository. It does not
// validate input; see TaskValidationService.
type taskService struct {
	taskRepository store.TaskRepository
	idGen          *utils.UUIDGenerator

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		idGen:          utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	task := models.Task{
		TaskID:    s.idGen.Generate(),
		Title:     strings.TrimSpace(req.Title),
		Completed: false,
		UserID:    userID,
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("creating task failed")
		return models.Task{}, fmt.Errorf("creating task failed: %w", err)
	}

	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return s.ownedTask(ctx, userID, taskID)
}

// UpdateTask applies the present fields of req. With no fields present the
// current task is returned unchanged.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	current, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	update := models.TaskUpdate{
		TaskID:    current.TaskID,
		UserID:    userID,
		Completed: req.Completed,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		update.Title = &title
	}
	if update.IsEmpty() {
		return current, nil
	}

	updated, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		return models.Task{}, s.taskError(ctx, "updating task failed", taskID, err)
	}

	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		return s.taskError(ctx, "deleting task failed", taskID, err)
	}

	return nil
}

// ownedTask is the owner guard: a task that does not exist, belongs to
// another user, or has a malformed id is reported as ErrTaskNotFound.
func (s *taskService) ownedTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if userID == "" || !utils.IsUUID(taskID) {
		return models.Task{}, ErrTaskNotFound
	}

	task, err := s.taskRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, s.taskError(ctx, "fetching task failed", taskID, err)
	}

	return task, nil
}

func (s *taskService) taskError(ctx context.Context, msg, taskID string, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	logger.FromContext(ctx).Err(err).Str("task_id", taskID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
