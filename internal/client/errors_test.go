// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "server message",
			err:  fmt.Errorf("create: %w", &adapter.ServerError{StatusCode: http.StatusBadRequest, Message: "Title is required"}),
			want: "Title is required",
		},
		{
			name: "server without message",
			err:  &adapter.ServerError{StatusCode: http.StatusBadGateway, Err: adapter.ErrBadGateway},
			want: "Bad Gateway",
		},
		{name: "timeout", err: fmt.Errorf("request: %w", context.DeadlineExceeded), want: "the server did not answer in time"},
		{name: "local usage", err: fmt.Errorf("%w: show ID", ErrUsage), want: "wrong usage: show ID"},
		{name: "anything else", err: errors.New("dial tcp: connection refused"), want: genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
