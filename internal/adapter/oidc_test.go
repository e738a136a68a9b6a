// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID = "test-client"
	testKeyID    = "test-key"
	testCode     = "good-code"
)

// fakeIssuer is a minimal OpenID provider: discovery, JWKS and a token
// endpoint that answers testCode with a signed ID token.
type fakeIssuer struct {
	*httptest.Server
	key      *rsa.PrivateKey
	audience string
	claims   jwt.MapClaims
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fakeIssuer{key: key, audience: testClientID}
	mux := http.NewServeMux()
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)

	f.claims = jwt.MapClaims{
		"sub":            "google-sub-1",
		"email":          "alice@example.com",
		"email_verified": true,
		"name":           "Alice",
		"picture":        "https://example.com/alice.png",
	}

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{
			"issuer":                                f.URL,
			"authorization_endpoint":                f.URL + "/auth",
			"token_endpoint":                        f.URL + "/token",
			"jwks_uri":                              f.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		}, http.StatusOK)
	})

	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"alg": "RS256",
				"use": "sig",
				"kid": testKeyID,
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		}, http.StatusOK)
	})

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != testCode {
			_, _ = utils.WriteJSON(w, map[string]string{"error": "invalid_grant"}, http.StatusBadRequest)
			return
		}

		claims := jwt.MapClaims{
			"iss": f.URL,
			"aud": f.audience,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		for k, v := range f.claims {
			claims[k] = v
		}
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		token.Header["kid"] = testKeyID
		idToken, err := token.SignedString(f.key)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		}, http.StatusOK)
	})

	return f
}

func (f *fakeIssuer) provider(t *testing.T) IdentityProvider {
	t.Helper()
	p, err := NewOIDCIdentityProvider(context.Background(), ProviderGoogle, config.OIDCProvider{
		ClientID:     testClientID,
		ClientSecret: "secret",
		IssuerURL:    f.URL,
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
	})
	require.NoError(t, err)
	return p
}

func TestNewOIDCIdentityProvider_DiscoveryFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	p, err := NewOIDCIdentityProvider(context.Background(), ProviderGoogle, config.OIDCProvider{
		ClientID:  testClientID,
		IssuerURL: srv.URL,
	})

	assert.Nil(t, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oidc discovery for google failed")
}

func TestOIDCIdentityProvider_AuthCodeURL(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider(t)

	raw := p.AuthCodeURL("nonce.sig")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "nonce.sig", u.Query().Get("state"))
	assert.Equal(t, testClientID, u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Contains(t, u.Query().Get("scope"), "openid")
	assert.Equal(t, ProviderGoogle, p.Name())
}

func TestOIDCIdentityProvider_Exchange_Success(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider(t)

	identity, err := p.Exchange(context.Background(), testCode)

	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, identity.Provider)
	assert.Equal(t, "google-sub-1", identity.Subject)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Alice", identity.Name)
	assert.Equal(t, "https://example.com/alice.png", identity.Picture)
}

func TestOIDCIdentityProvider_Exchange_BadCode(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider(t)

	_, err := p.Exchange(context.Background(), "bad-code")

	assert.ErrorIs(t, err, ErrIdentityExchange)
}

func TestOIDCIdentityProvider_Exchange_WrongAudience(t *testing.T) {
	issuer := newFakeIssuer(t)
	issuer.audience = "someone-else"
	p := issuer.provider(t)

	_, err := p.Exchange(context.Background(), testCode)

	assert.ErrorIs(t, err, ErrInvalidIdentityToken)
}
