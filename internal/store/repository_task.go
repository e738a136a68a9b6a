// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table.
//
// Every statement that reads or writes a single task carries both the task
// id and the owner id in its WHERE clause.
type taskRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
		now:    utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// CreateTask inserts task. CreatedAt and UpdatedAt are set here when zero.
//
// Error handling:
//   - foreign key violation (owner does not exist) → [ErrUserNotFound].
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.CreatedAt.IsZero() {
		task.CreatedAt = t.now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	query, args, err := buildCreateTaskQuery(t.builder, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.DB.ExecContext(ctx, query, args...); err != nil {
		if t.errorClassificator.IsForeignKeyViolation(err) {
			return models.Task{}, ErrUserNotFound
		}
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// ListTasks returns every task of userID ordered by creation time, newest
// first. Returns an empty slice when the user has no tasks.
func (t *taskRepository) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(t.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Str("user_id", userID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.ListTasks").
				Str("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.ListTasks").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask returns the task taskID if it belongs to userID, otherwise
// [ErrTaskNotFound].
func (t *taskRepository) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	query, args, err := buildGetTaskQuery(t.builder, userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTask(ctx, "*taskRepository.GetTask", query, args)
}

// UpdateTask applies update in a single statement filtered by id and owner.
// Returns [ErrTaskNotFound] when no row matched.
func (t *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	query, args, err := buildUpdateTaskQuery(t.builder, update, t.now())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTask(ctx, "*taskRepository.UpdateTask", query, args)
}

// DeleteTask removes the task taskID of userID. Returns [ErrTaskNotFound]
// when no row matched.
func (t *taskRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(t.builder, userID, taskID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Str("user_id", userID).
			Str("task_id", taskID).
			Msg("failed to delete task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (t *taskRepository) queryTask(ctx context.Context, funcName, query string, args []any) (models.Task, error) {
	task, err := scanTask(t.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}
