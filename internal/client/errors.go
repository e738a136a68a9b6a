// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong usage")
	ErrNotLoggedIn    = errors.New("not logged in, run `login` first")
	ErrBatchFailed    = errors.New("some tasks could not be processed")
)

// genericErrorMessage is shown when nothing more specific is known.
const genericErrorMessage = "Something went wrong!"

// ErrorMessage returns the text to show the user for err. Messages written
// by the server are returned verbatim.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "the server did not answer in time"
	case errors.Is(err, ErrNoCommand),
		errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrUsage),
		errors.Is(err, ErrNotLoggedIn),
		errors.Is(err, ErrBatchFailed):
		return err.Error()
	}

	return genericErrorMessage
}
