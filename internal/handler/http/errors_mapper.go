// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidOAuthState:           http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	ErrNoSessionToken:                  http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	service.ErrNoSuchUser:              http.StatusUnauthorized,
	service.ErrInvalidPassword:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrIdentityNotVerified:     http.StatusUnauthorized,

	service.ErrTaskNotFound:             http.StatusNotFound,
	service.ErrIdentityProviderDisabled: http.StatusNotFound,
	store.ErrTaskNotFound:               http.StatusNotFound,
	store.ErrUserNotFound:               http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,
}

// errorMessages is searched in order. Validation details come before the
// generic ErrInvalidDataProvided that wraps them.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrNoSuchUser, app.MsgInvalidCredentials},
	{service.ErrInvalidPassword, app.MsgInvalidCredentials},
	{service.ErrIdentityNotVerified, app.MsgIdentityNotVerified},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgUnauthorized},
	{ErrNoSessionToken, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, app.MsgUnauthorized},
	{service.ErrTaskNotFound, app.MsgTaskNotFound},
	{store.ErrTaskNotFound, app.MsgTaskNotFound},
	{store.ErrUserNotFound, app.MsgUserNotFound},
	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyInUse},
	{validators.ErrEmptyTitle, app.MsgTitleIsRequired},
	{validators.ErrTitleTooLong, app.MsgTitleIsTooLong},
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrInvalidOAuthState, app.MsgInvalidState},
	{service.ErrInvalidDataProvided, app.MsgInvalidFields},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Internal errors
// get internalMessage so that store details never leave the server.
func messageFromError(err error, status int, internalMessage string) string {
	if status >= http.StatusInternalServerError {
		if internalMessage == "" {
			return http.StatusText(http.StatusInternalServerError)
		}
		return internalMessage
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return http.StatusText(status)
}

// writeError logs err and answers with {"error": message}.
func writeError(w http.ResponseWriter, r *http.Request, err error, internalMessage string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err, status, internalMessage)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
