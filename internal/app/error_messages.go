// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-task-keeper server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. The command-line client prints them verbatim, so the wording is
// part of the API.
package app

// Client errors.
const (
	// MsgUnauthorized is returned when a request has no session or the
	// session token is expired or forged.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so login never reveals whether an account exists.
	MsgInvalidCredentials = "invalid email or password"

	// MsgIdentityNotVerified is returned when a provider sign-in cannot be
	// trusted, e.g. its email matches an account but is not verified.
	MsgIdentityNotVerified = "identity could not be verified"

	MsgInvalidFields   = "Invalid fields!"
	MsgInvalidJSON     = "Invalid JSON was passed"
	MsgInvalidState    = "Invalid state"
	MsgTitleIsRequired = "Title is required"
	MsgTitleIsTooLong  = "Title is too long"

	MsgEmailAlreadyInUse = "Email already in use!"

	MsgTaskNotFound = "Task not found"
	MsgUserNotFound = "User not found"
)

// Server errors. Details are logged and never sent to the client.
const (
	MsgRegistrationFailed = "Failed to create user account."
	MsgSomethingWentWrong = "Something went wrong!"

	MsgErrorFetchingUser  = "Error fetching user"
	MsgErrorCreatingTasks = "Error creating tasks"
	MsgErrorFetchingTasks = "Error fetching tasks"
	MsgErrorFetchingTask  = "Error fetching task"
	MsgErrorUpdatingTask  = "Error updating task"
	MsgErrorDeletingTask  = "Error deleting task"
)

// Success messages.
const (
	MsgTaskDeleted = "Task deleted successfully"
)
