// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository persists user accounts and their provider links.
type UserRepository interface {
	// CreateUser inserts user. Returns ErrEmailAlreadyExists when the email
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CreateUserWithAccount inserts user and links account to it in one
	// transaction.
	CreateUserWithAccount(ctx context.Context, user models.User, account models.Account) (models.User, error)

	// FindUserByEmail looks a user up by its normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its identifier.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindUserByAccount looks up the user linked to a provider identity.
	FindUserByAccount(ctx context.Context, provider, providerAccountID string) (models.User, error)

	// LinkAccount links a provider identity to an existing user.
	LinkAccount(ctx context.Context, account models.Account) error
}

// TaskRepository persists tasks. Every method that addresses a single task
// filters by both the task id and the owner id.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// ListTasks returns the tasks of userID, newest first.
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)

	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)

	// UpdateTask applies the non-nil fields of update and returns the
	// resulting task.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	DeleteTask(ctx context.Context, userID, taskID string) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors to the conditions repositories care
// about.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}
