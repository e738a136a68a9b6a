// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict Validate to a subset of fields.
const (
	// FieldName targets the display name of a registering user.
	FieldName = "name"

	// FieldEmail targets the login email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration.
	// It enforces [MinPasswordLength].
	FieldPassword = "password"

	// FieldLoginPassword only requires the password to be present.
	FieldLoginPassword = "login_password"

	// FieldUserID targets the owner identifier of a task or update.
	FieldUserID = "user_id"

	// FieldTaskID targets the identifier of an updated task.
	FieldTaskID = "task_id"

	// FieldTitle targets the task title.
	FieldTitle = "title"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6

	// MaxTitleLength is the longest title accepted, in runes.
	MaxTitleLength = 255
)
