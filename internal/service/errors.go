// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNoSuchUser      = errors.New("no such user")
	ErrInvalidPassword = errors.New("invalid password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTaskNotFound = errors.New("task not found")

	ErrIdentityProviderDisabled = errors.New("identity provider is disabled")
	ErrIdentityNotVerified      = errors.New("identity could not be verified")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
