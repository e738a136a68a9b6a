// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx JSON response.
// The message is meant to be shown to the user verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is returned by the registration, login, identity-provider
// callback and current-user endpoints.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// TaskResponse is returned by the single-task endpoints.
type TaskResponse struct {
	Success bool `json:"success"`
	Task    Task `json:"task"`
}

// TaskListResponse is returned by GET /api/tasks. Tasks are ordered newest
// first.
type TaskListResponse struct {
	Success bool   `json:"success"`
	Tasks   []Task `json:"tasks"`
}

// MessageResponse is returned by endpoints that have nothing but a status to
// report (delete, logout).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
