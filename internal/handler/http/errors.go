// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when a request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoSessionToken = errors.New("no session token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidOAuthState is returned when the state query parameter of a
	// provider callback does not match the signed state cookie.
	ErrInvalidOAuthState = errors.New("invalid oauth state")
)
