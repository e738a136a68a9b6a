// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 10 * time.Minute
)

// googleLogin redirects the browser to the identity provider. The state is a
// random nonce signed with the app hash key and kept in a short-lived cookie.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	state := utils.SignValue(uuid.NewString(), h.hashKey)

	redirectURL, err := h.services.IdentityService.AuthCodeURL(state)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   int(stateCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.session.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.IdentityService.Enabled() {
		writeError(w, r, service.ErrIdentityProviderDisabled, "")
		return
	}

	if err := h.checkState(r); err != nil {
		writeError(w, r, err, "")
		return
	}
	h.clearState(w)

	user, err := h.services.IdentityService.SignIn(ctx, r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, err, app.MsgSomethingWentWrong)
		return
	}

	token, err := h.services.AuthService.IssueSession(ctx, user)
	if err != nil {
		writeError(w, r, err, app.MsgSomethingWentWrong)
		return
	}
	h.setSession(w, token)

	log.Info().Str("user_id", user.UserID).Msg("user signed in with identity provider")

	if h.postLoginRedirect != "" {
		http.Redirect(w, r, h.postLoginRedirect, http.StatusFound)
		return
	}
	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

// checkState compares the state query parameter with the signed cookie.
func (h *Handler) checkState(r *http.Request) error {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil {
		return ErrInvalidOAuthState
	}

	if _, ok := utils.VerifySignedValue(cookie.Value, h.hashKey); !ok {
		return ErrInvalidOAuthState
	}
	if r.URL.Query().Get("state") != cookie.Value {
		return ErrInvalidOAuthState
	}

	return nil
}

func (h *Handler) clearState(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.secure,
	})
}
