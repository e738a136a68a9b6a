// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a single to-do item. Every task has exactly one owner and is only
// ever visible to that owner.
type Task struct {
	// TaskID is the unique identifier of the task (UUIDv7 string).
	TaskID string `json:"id"`

	// Title is the non-empty task description.
	Title string `json:"title"`

	// Completed is false when the task is created.
	Completed bool `json:"completed"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate carries a partial update of a task. Nil fields are left as is.
type TaskUpdate struct {
	// TaskID identifies the task to update. Required.
	TaskID string

	// UserID is the owner filter applied to the UPDATE. Required.
	UserID string

	Title     *string
	Completed *bool
}

// IsEmpty reports whether the update would not change any column.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Completed == nil
}
