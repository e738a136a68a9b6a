// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of go-task-keeper.
//
// [ServerAdapter] is the client-side view of the task HTTP API, used by the
// terminal client. [IdentityProvider] is the server-side view of an external
// OpenID Connect provider, used for "Sign in with Google".
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-task-keeper server.
// Implementations are responsible for serialisation, session header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the session token returned by
	// the server is stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with email and password. On success the session
	// token returned by the server is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout tells the server to clear the session cookie and forgets the
	// local token.
	Logout(ctx context.Context) error

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// IdentityProvider is an external OpenID Connect provider.
type IdentityProvider interface {
	// Name is the provider key stored in accounts.provider, e.g. "google".
	Name() string

	// AuthCodeURL returns the provider consent URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a verified identity.
	Exchange(ctx context.Context, code string) (models.ProviderIdentity, error)
}
