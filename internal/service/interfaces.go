// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TaskServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	ValidateCredentials(ctx context.Context, email, password string) (models.User, error)
	IssueSession(ctx context.Context, user models.User) (models.Token, error)
	ResolveSession(ctx context.Context, tokenString string) (models.Session, error)
	CurrentUser(ctx context.Context, session models.Session) (models.User, error)
}

// IdentityService signs users in through an external OpenID Connect
// provider.
type IdentityService interface {
	// Enabled reports whether a provider is configured.
	Enabled() bool

	// AuthCodeURL returns the provider redirect carrying state.
	AuthCodeURL(state string) (string, error)

	// SignIn exchanges code and resolves the local user, linking or
	// creating it when needed.
	SignIn(ctx context.Context, code string) (models.User, error)
}

// TaskService manages the tasks of a single owner. Every method takes the
// id of the authenticated user.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// logging or validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// Health returns nil when the storage backend answers.
	Health(ctx context.Context) error
}
