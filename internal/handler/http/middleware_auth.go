// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The token is taken from the "Authorization: Bearer" header or, when the
// header is absent, from the session cookie. It is resolved via
// [service.AuthService.ResolveSession] and the resulting session is stored
// in the request context with [utils.WithSession].
//
// Requests without a token, with a malformed header, or with an expired or
// forged token are rejected with 401 {"error": "Unauthorized"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.sessionToken(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ResolveSession(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}
