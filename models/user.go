// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role carried by a user and by every session
// issued for that user.
type Role string

const (
	// RoleUser is assigned to every account on creation.
	RoleUser Role = "USER"

	// RoleAdmin is an elevated role. It is never assigned by the application
	// itself and has to be granted directly in the database.
	RoleAdmin Role = "ADMIN"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Email is the unique login key. It is stored trimmed and lower-cased.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Empty for accounts created through an identity provider.
	PasswordHash string `json:"-"`

	// Image is an optional avatar URL reported by an identity provider.
	Image string `json:"image,omitempty"`

	// Role defaults to [RoleUser].
	Role Role `json:"role"`

	// EmailVerified is set when an identity provider asserted the address.
	EmailVerified *time.Time `json:"email_verified,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can sign in with credentials.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Account links a user to an identity at an external provider.
type Account struct {
	UserID            string `json:"user_id"`
	Provider          string `json:"provider"`
	ProviderAccountID string `json:"provider_account_id"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// ProviderIdentity is what an identity provider asserts about a signed-in
// user after the authorization code has been exchanged and verified.
type ProviderIdentity struct {
	Provider      string
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
