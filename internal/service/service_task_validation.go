// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService checks task input before handing it to the wrapped
// TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	if err := v.validator.Validate(ctx, models.Task{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListTasks(ctx, userID)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, models.Task{UserID: userID, Title: req.Title}); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTask(ctx, userID, req)
}

func (v *TaskValidationService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	return v.inner.GetTask(ctx, userID, taskID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	update := models.TaskUpdate{
		TaskID:    taskID,
		UserID:    userID,
		Title:     req.Title,
		Completed: req.Completed,
	}
	if err := v.validator.Validate(ctx, update, validators.FieldUserID, validators.FieldTitle); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTask(ctx, userID, taskID, req)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, userID, taskID string) error {
	return v.inner.DeleteTask(ctx, userID, taskID)
}

func (v *TaskValidationService) Wrap(wrapper TaskService) TaskService {
	v.inner = wrapper
	return v
}
