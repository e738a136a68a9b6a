// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// ProviderGoogle is the accounts.provider value of Google sign-ins.
const ProviderGoogle = "google"

type oidcIdentityProvider struct {
	name     string
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// idTokenClaims are the profile claims read from a verified ID token.
type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// NewOIDCIdentityProvider runs OIDC discovery against cfg.IssuerURL and
// returns a provider that performs the authorization code flow with the
// openid, email and profile scopes.
func NewOIDCIdentityProvider(ctx context.Context, name string, cfg config.OIDCProvider) (IdentityProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery for %s failed: %w", name, err)
	}

	return &oidcIdentityProvider{
		name: name,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

func (p *oidcIdentityProvider) Name() string {
	return p.name
}

func (p *oidcIdentityProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *oidcIdentityProvider) Exchange(ctx context.Context, code string) (models.ProviderIdentity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrIdentityExchange, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return models.ProviderIdentity{}, fmt.Errorf("%w: no id_token in token response", ErrInvalidIdentityToken)
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIdentityToken, err)
	}

	var claims idTokenClaims
	if err = idToken.Claims(&claims); err != nil {
		return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIdentityToken, err)
	}

	return models.ProviderIdentity{
		Provider:      p.name,
		Subject:       idToken.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}
