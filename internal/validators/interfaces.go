// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the stores.
//
// UserValidator covers registration and login, TaskValidator covers task
// creation and updates. Both report the first failing rule as one of the
// sentinel errors in errors.go, so callers can match them with errors.Is.
package validators

import "context"

// Validator validates obj. When fields are given only those fields are
// checked; otherwise every rule for the concrete type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
