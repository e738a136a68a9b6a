// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_MissingFileIsEmpty(t *testing.T) {
	s := NewTokenStore(filepath.Join(t.TempDir(), "nope", "token"))

	token, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".go-task-keeper", "token")
	s := NewTokenStore(path)

	require.NoError(t, s.Save("jwt-value"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", token)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing twice is fine")

	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStore_SaveTightensExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, NewTokenStore(path).Save("new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
