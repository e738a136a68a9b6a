// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the server and the client:
// typed context keys, session token signing and parsing, password hashing,
// HMAC signing of short values, JSON responses and the HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// verified [models.Session] of the request.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext returns the session stored by WithSession.
// ok is false when the context carries no session or a session without an
// owner.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || session.UserID == "" {
		return models.Session{}, false
	}
	return session, true
}

// GetUserIDFromContext returns the owner identifier of the request.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // unauthenticated
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := GetSessionFromContext(ctx)
	return session.UserID, ok
}
