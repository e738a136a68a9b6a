// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.TaskUpdate:
		return v.validateTaskUpdate(ctx, value, fields...)
	case *models.TaskUpdate:
		return v.validateTaskUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if task.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTaskID:
			if task.TaskID == "" {
				return ErrInvalidTaskID
			}
		case FieldTitle:
			if err := validateTitle(task.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTaskUpdate only checks the title when the update carries one.
func (v *TaskValidator) validateTaskUpdate(_ context.Context, update models.TaskUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskID, FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if update.TaskID == "" {
				return ErrInvalidTaskID
			}
		case FieldUserID:
			if update.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			if err := validateTitle(*update.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
