// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

type identityService struct {
	// provider is nil when sign-in with an external provider is disabled.
	provider       adapter.IdentityProvider
	userRepository store.UserRepository

	idGen *utils.UUIDGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewIdentityService returns an IdentityService over provider. A nil
// provider yields a service whose methods return
// ErrIdentityProviderDisabled.
func NewIdentityService(provider adapter.IdentityProvider, userRepository store.UserRepository, logger *logger.Logger) IdentityService {
	return &identityService{
		provider:       provider,
		userRepository: userRepository,
		idGen:          utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *identityService) Enabled() bool {
	return s.provider != nil
}

func (s *identityService) AuthCodeURL(state string) (string, error) {
	if !s.Enabled() {
		return "", ErrIdentityProviderDisabled
	}
	return s.provider.AuthCodeURL(state), nil
}

// SignIn resolves the local user of a provider identity in this order:
//  1. a user already linked to (provider, subject);
//  2. a user with the same verified email, which gets linked;
//  3. a new password-less user, created together with the link.
func (s *identityService) SignIn(ctx context.Context, code string) (models.User, error) {
	if !s.Enabled() {
		return models.User{}, ErrIdentityProviderDisabled
	}
	if code == "" {
		return models.User{}, fmt.Errorf("%w: empty authorization code", ErrInvalidDataProvided)
	}

	log := logger.FromContext(ctx)

	identity, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("provider", s.provider.Name()).Msg("identity exchange failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrIdentityNotVerified, err)
	}
	if identity.Subject == "" || identity.Email == "" {
		return models.User{}, fmt.Errorf("%w: identity without subject or email", ErrIdentityNotVerified)
	}

	user, err := s.userRepository.FindUserByAccount(ctx, identity.Provider, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("user search by account failed")
		return models.User{}, fmt.Errorf("user search by account failed: %w", err)
	}

	account := models.Account{
		Provider:          identity.Provider,
		ProviderAccountID: identity.Subject,
	}
	email := normalizeEmail(identity.Email)

	user, err = s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !identity.EmailVerified {
			log.Warn().Str("user_id", user.UserID).Msg("unverified provider email matches an existing user")
			return models.User{}, fmt.Errorf("%w: email is not verified", ErrIdentityNotVerified)
		}
		account.UserID = user.UserID
		if err = s.userRepository.LinkAccount(ctx, account); err != nil {
			log.Err(err).Str("user_id", user.UserID).Msg("linking account failed")
			return models.User{}, fmt.Errorf("linking account failed: %w", err)
		}
		log.Info().Str("user_id", user.UserID).Str("provider", account.Provider).Msg("account linked")
		return user, nil

	case errors.Is(err, store.ErrUserNotFound):
		return s.createUser(ctx, identity, email, account)

	default:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
}

func (s *identityService) createUser(ctx context.Context, identity models.ProviderIdentity, email string, account models.Account) (models.User, error) {
	now := s.now()
	user := models.User{
		UserID:    s.idGen.Generate(),
		Email:     email,
		Name:      strings.TrimSpace(identity.Name),
		Image:     identity.Picture,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if identity.EmailVerified {
		user.EmailVerified = &now
	}

	created, err := s.userRepository.CreateUserWithAccount(ctx, user, account)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("provider", account.Provider).Msg("creating provider user failed")
		return models.User{}, fmt.Errorf("creating provider user failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", created.UserID).Str("provider", account.Provider).Msg("user registered")
	return created, nil
}
