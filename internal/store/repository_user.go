// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" and "accounts" tables.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given. Identifier and timestamps are assigned
// by the caller.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, r.insertUserError(ctx, "*userRepository.CreateUser", err)
	}

	return user, nil
}

// CreateUserWithAccount inserts user and its first provider link atomically.
func (r *userRepository) CreateUserWithAccount(ctx context.Context, user models.User, account models.Account) (models.User, error) {
	log := logger.FromContext(ctx)

	userQuery, userArgs, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	account.UserID = user.UserID
	accountQuery, accountArgs, err := buildLinkAccountQuery(r.builder, account)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAccount").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, userQuery, userArgs...); err != nil {
		return models.User{}, r.insertUserError(ctx, "*userRepository.CreateUserWithAccount", err)
	}

	if _, err = tx.ExecContext(ctx, accountQuery, accountArgs...); err != nil {
		return models.User{}, r.linkAccountError(ctx, "*userRepository.CreateUserWithAccount", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAccount").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.builder, sq.Eq{"email": email})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.builder, sq.Eq{"id": userID})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) FindUserByAccount(ctx context.Context, provider, providerAccountID string) (models.User, error) {
	query, args, err := buildFindUserByAccountQuery(r.builder, provider, providerAccountID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "*userRepository.FindUserByAccount", query, args)
}

// LinkAccount inserts a provider link for an existing user.
//
// Error handling:
//   - unique violation → [ErrAccountAlreadyLinked].
//   - foreign key violation → [ErrUserNotFound].
func (r *userRepository) LinkAccount(ctx context.Context, account models.Account) error {
	query, args, err := buildLinkAccountQuery(r.builder, account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return r.linkAccountError(ctx, "*userRepository.LinkAccount", err)
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) insertUserError(ctx context.Context, funcName string, err error) error {
	if r.errorClassificator.IsUniqueViolation(err) {
		return ErrEmailAlreadyExists
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error: inserting user")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *userRepository) linkAccountError(ctx context.Context, funcName string, err error) error {
	switch {
	case r.errorClassificator.IsUniqueViolation(err):
		return ErrAccountAlreadyLinked
	case r.errorClassificator.IsForeignKeyViolation(err):
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error: linking account")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
