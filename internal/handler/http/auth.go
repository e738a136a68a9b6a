// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	h.startSession(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	user, err := h.services.AuthService.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, app.MsgSomethingWentWrong)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")
	h.startSession(w, r, user, http.StatusOK)
}

// logout only drops the cookie. Issued tokens stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	utils.WriteJSON(w, models.MessageResponse{Success: true}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), session)
	if err != nil {
		writeError(w, r, err, app.MsgErrorFetchingUser)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

// startSession issues a session for user and answers with {success, user}.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.IssueSession(r.Context(), user)
	if err != nil {
		writeError(w, r, err, app.MsgSomethingWentWrong)
		return
	}

	h.setSession(w, token)
	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, status)
}
