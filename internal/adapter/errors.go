// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrNoTokenInResponse = errors.New("no session token in response")

	ErrIdentityExchange     = errors.New("identity provider code exchange failed")
	ErrInvalidIdentityToken = errors.New("invalid identity token")
)

// ServerError is a non-2xx answer of the server. Error returns the message
// the server put in its JSON body, so it can be shown to the user as is.
type ServerError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return e.Err.Error()
}

func (e *ServerError) Unwrap() error {
	return e.Err
}
