// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const authorizationHeader = "Authorization"

type sessionSettings struct {
	cookieName string
	secure     bool
	maxAge     time.Duration
}

// setSession hands the signed token to the client twice: as an HttpOnly
// cookie for browsers and as a bearer header for the command-line client.
func (h *Handler) setSession(w http.ResponseWriter, token models.Token) {
	w.Header().Set(authorizationHeader, "Bearer "+token.SignedString)
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.session.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.session.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the raw token of r. The "Authorization" header wins
// over the cookie.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if header := r.Header.Get(authorizationHeader); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	cookie, err := r.Cookie(h.session.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSessionToken
	}
	return cookie.Value, nil
}
