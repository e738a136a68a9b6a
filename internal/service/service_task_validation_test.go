// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T) (TaskService, *mock.MockTaskService) {
	t.Helper()
	inner := mock.NewMockTaskService(gomock.NewController(t))
	return NewTaskValidationService().Wrap(inner), inner
}

func TestTaskValidationService_CreateTask_RejectsEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		svc, _ := newTestValidationSvc(t)

		_, err := svc.CreateTask(context.Background(), ownerID, models.CreateTaskRequest{Title: title})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	}
}

func TestTaskValidationService_CreateTask_RejectsLongTitle(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.CreateTask(context.Background(), ownerID, models.CreateTaskRequest{Title: strings.Repeat("x", 256)})

	assert.ErrorIs(t, err, validators.ErrTitleTooLong)
}

func TestTaskValidationService_CreateTask_PassesValidInput(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	req := models.CreateTaskRequest{Title: "Buy milk"}
	inner.EXPECT().CreateTask(gomock.Any(), ownerID, req).Return(ownedBy(ownerID), nil)

	got, err := svc.CreateTask(context.Background(), ownerID, req)

	require.NoError(t, err)
	assert.Equal(t, ownedBy(ownerID), got)
}

func TestTaskValidationService_ListTasks_RequiresOwner(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	inner.EXPECT().ListTasks(gomock.Any(), ownerID).Return([]models.Task{}, nil)

	_, err := svc.ListTasks(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.ListTasks(context.Background(), ownerID)
	assert.NoError(t, err)
}

func TestTaskValidationService_UpdateTask(t *testing.T) {
	tests := []struct {
		name      string
		req       models.UpdateTaskRequest
		wantErr   error
		wantInner bool
	}{
		{name: "empty title", req: models.UpdateTaskRequest{Title: strPtr("")}, wantErr: validators.ErrEmptyTitle},
		{name: "blank title", req: models.UpdateTaskRequest{Title: strPtr("  ")}, wantErr: validators.ErrEmptyTitle},
		{name: "new title", req: models.UpdateTaskRequest{Title: strPtr("Renamed")}, wantInner: true},
		{name: "completed only", req: models.UpdateTaskRequest{Completed: boolPtr(true)}, wantInner: true},
		{name: "no fields", req: models.UpdateTaskRequest{}, wantInner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestValidationSvc(t)
			if tt.wantInner {
				inner.EXPECT().UpdateTask(gomock.Any(), ownerID, taskID, tt.req).Return(ownedBy(ownerID), nil)
			}

			_, err := svc.UpdateTask(context.Background(), ownerID, taskID, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskValidationService_GetAndDeletePassThrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	inner.EXPECT().GetTask(gomock.Any(), ownerID, "anything").Return(models.Task{}, ErrTaskNotFound)
	inner.EXPECT().DeleteTask(gomock.Any(), ownerID, taskID).Return(nil)

	_, err := svc.GetTask(context.Background(), ownerID, "anything")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.NoError(t, svc.DeleteTask(context.Background(), ownerID, taskID))
}
