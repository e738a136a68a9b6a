// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer      = "go-task-keeper"
	defaultTokenDuration    = 30 * 24 * time.Hour
	defaultCookieName       = "session_token"
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultMaxOpenConns     = 10
	defaultGoogleIssuerURL  = "https://accounts.google.com"
	defaultClientTokenDir   = ".go-task-keeper"
	defaultClientTokenFile  = "token"
	defaultClientServerAddr = "http://localhost:8080"
)

// applyDefaults fills the fields that are still empty after every source has
// been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.CookieName == "" {
		cfg.App.CookieName = defaultCookieName
	}
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Identity.Google.Enabled() && cfg.Identity.Google.IssuerURL == "" {
		cfg.Identity.Google.IssuerURL = defaultGoogleIssuerURL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if google := cfg.Identity.Google; google.Enabled() {
		if google.ClientSecret == "" || google.RedirectURL == "" {
			return fmt.Errorf("%w: google client secret and redirect url are required", ErrInvalidIdentityConfigs)
		}
		if cfg.App.HashKey == "" {
			return fmt.Errorf("%w: hash key is required to sign oauth state", ErrInvalidIdentityConfigs)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.TokenFile == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
