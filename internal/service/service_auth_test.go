// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		PasswordHashCost: bcrypt.MinCost,
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-task-keeper",
		TokenDuration:    time.Hour,
	}
}

// newTestAuthSvc creates an authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, cfg, logger.Nop()).(*authService)
	return svc, repo
}

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		UserID:       "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())

	var saved models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		})

	got, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "  Alice ",
		Email:    " Alice@Example.COM",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.True(t, utils.IsUUID(saved.UserID))
	assert.Equal(t, "alice@example.com", saved.Email)
	assert.Equal(t, "Alice", saved.Name)
	assert.Equal(t, models.RoleUser, saved.Role)
	assert.NotEqual(t, "secret1", saved.PasswordHash)
	assert.True(t, utils.CheckPassword(saved.PasswordHash, "secret1"))
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "blank name", req: models.RegisterRequest{Name: " ", Email: "a@b.co", Password: "secret1"}, wantErr: validators.ErrInvalidName},
		{name: "bad email", req: models.RegisterRequest{Name: "A", Email: "nope", Password: "secret1"}, wantErr: validators.ErrInvalidEmail},
		{name: "short password", req: models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "12345"}, wantErr: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t, testAppConfig())

			_, err := svc.Register(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_InvalidHashCost(t *testing.T) {
	cfg := testAppConfig()
	cfg.PasswordHashCost = bcrypt.MaxCost + 1
	svc, _ := newTestAuthSvc(t, cfg)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

// ── ValidateCredentials ──────────────────────────────────────────────────────

func TestAuthService_ValidateCredentials_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	user := hashedUser(t, "secret1")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

	got, err := svc.ValidateCredentials(context.Background(), "Alice@Example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_ValidateCredentials_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(hashedUser(t, "secret1"), nil)

	_, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "secret2")

	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_ValidateCredentials_UnknownEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.ValidateCredentials(context.Background(), "ghost@example.com", "secret1")

	assert.ErrorIs(t, err, ErrNoSuchUser)
}

func TestAuthService_ValidateCredentials_ProviderOnlyAccount(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: "u1", Email: "alice@example.com"}, nil)

	_, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "anything")

	assert.ErrorIs(t, err, ErrNoSuchUser)
}

func TestAuthService_ValidateCredentials_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig())

	_, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.ValidateCredentials(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ValidateCredentials_StoreError(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "secret1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNoSuchUser)
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestAuthService_IssueAndResolveSession(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig())
	user := models.User{UserID: "u1", Role: models.RoleAdmin}

	token, err := svc.IssueSession(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	session, err := svc.ResolveSession(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: "u1", Role: models.RoleAdmin}, session)
}

func TestAuthService_IssueSession_DefaultsRole(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig())

	token, err := svc.IssueSession(context.Background(), models.User{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestAuthService_IssueSession_NoUserID(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig())

	_, err := svc.IssueSession(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ResolveSession_Rejects(t *testing.T) {
	issuer, _ := newTestAuthSvc(t, testAppConfig())
	valid, err := issuer.IssueSession(context.Background(), models.User{UserID: "u1"})
	require.NoError(t, err)

	otherKeyCfg := testAppConfig()
	otherKeyCfg.TokenSignKey = "other-key"
	otherKey, _ := newTestAuthSvc(t, otherKeyCfg)

	otherIssuerCfg := testAppConfig()
	otherIssuerCfg.TokenIssuer = "someone-else"
	otherIssuer, _ := newTestAuthSvc(t, otherIssuerCfg)

	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Minute
	expiredIssuer, _ := newTestAuthSvc(t, expiredCfg)
	expired, err := expiredIssuer.IssueSession(context.Background(), models.User{UserID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   *authService
		token string
	}{
		{name: "garbage", svc: issuer, token: "not-a-jwt"},
		{name: "empty", svc: issuer, token: ""},
		{name: "tampered", svc: issuer, token: valid.SignedString + "x"},
		{name: "other sign key", svc: otherKey, token: valid.SignedString},
		{name: "other issuer", svc: otherIssuer, token: valid.SignedString},
		{name: "expired", svc: issuer, token: expired.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := tt.svc.ResolveSession(context.Background(), tt.token)

			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.Empty(t, session.UserID)
		})
	}
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig())
	user := models.User{UserID: "u1", Email: "alice@example.com"}
	repo.EXPECT().FindUserByID(gomock.Any(), "u1").Return(user, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrUserNotFound)

	got, err := svc.CurrentUser(context.Background(), models.Session{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.CurrentUser(context.Background(), models.Session{UserID: "gone"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = svc.CurrentUser(context.Background(), models.Session{})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
