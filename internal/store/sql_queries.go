// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	usersTable    = models.User{}.TableName()
	accountsTable = models.Account{}.TableName()
	tasksTable    = models.Task{}.TableName()

	userColumns = []string{
		"id", "name", "email", "email_verified", "image", "password_hash", "role", "created_at", "updated_at",
	}
	taskColumns = []string{
		"id", "title", "completed", "user_id", "created_at", "updated_at",
	}
)

func qualified(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			nullString(user.Name),
			user.Email,
			nullTime(user.EmailVerified),
			nullString(user.Image),
			nullString(user.PasswordHash),
			string(user.Role),
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildFindUserByAccountQuery(b sq.StatementBuilderType, provider, providerAccountID string) (string, []any, error) {
	return b.Select(qualified("u", userColumns)...).
		From(usersTable + " u").
		Join(accountsTable + " a ON a.user_id = u.id").
		Where(sq.Eq{"a.provider": provider, "a.provider_account_id": providerAccountID}).
		Limit(1).
		ToSql()
}

func buildLinkAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(accountsTable).
		Columns("user_id", "provider", "provider_account_id").
		Values(account.UserID, account.Provider, account.ProviderAccountID).
		ToSql()
}

// ── tasks ─────────────────────────────────────────────────────────────────────

func buildCreateTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.TaskID, task.Title, task.Completed, task.UserID, task.CreatedAt, task.UpdatedAt).
		ToSql()
}

func buildListTasksQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetTaskQuery(b sq.StatementBuilderType, userID, taskID string) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateTaskQuery sets the non-nil fields of update plus updated_at and
// returns the updated row.
func buildUpdateTaskQuery(b sq.StatementBuilderType, update models.TaskUpdate, now time.Time) (string, []any, error) {
	if update.TaskID == "" || update.UserID == "" {
		return "", nil, fmt.Errorf("%w: task id and user id are required", ErrBuildingSQLQuery)
	}

	query := b.Update(tasksTable).Set("updated_at", now)
	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Completed != nil {
		query = query.Set("completed", *update.Completed)
	}

	return query.
		Where(sq.Eq{"id": update.TaskID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, userID, taskID string) (string, []any, error) {
	return b.Delete(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── scanning ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user          models.User
		name          sql.NullString
		emailVerified sql.NullTime
		image         sql.NullString
		passwordHash  sql.NullString
	)

	err := row.Scan(
		&user.UserID,
		&name,
		&user.Email,
		&emailVerified,
		&image,
		&passwordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Name = name.String
	user.Image = image.String
	user.PasswordHash = passwordHash.String
	if emailVerified.Valid {
		verifiedAt := emailVerified.Time
		user.EmailVerified = &verifiedAt
	}

	return user, nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.TaskID,
		&task.Title,
		&task.Completed,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	return task, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
