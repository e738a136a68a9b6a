// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("state"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("state", testHashKey))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("state", "key-one"), HashString("state", "key-two"))
}

func TestSignValue_RoundTrip(t *testing.T) {
	signed := SignValue("0192b3c4-nonce", testHashKey)

	value, ok := VerifySignedValue(signed, testHashKey)

	require.True(t, ok)
	assert.Equal(t, "0192b3c4-nonce", value)
}

func TestVerifySignedValue_Rejects(t *testing.T) {
	signed := SignValue("nonce", testHashKey)

	tests := []struct {
		name   string
		signed string
		key    string
	}{
		{name: "wrong key", signed: signed, key: "other-key"},
		{name: "tampered value", signed: "other" + signed[len("nonce"):], key: testHashKey},
		{name: "tampered signature", signed: signed + "00", key: testHashKey},
		{name: "no separator", signed: "nonce", key: testHashKey},
		{name: "empty value", signed: "." + HashString("", testHashKey), key: testHashKey},
		{name: "empty", signed: "", key: testHashKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := VerifySignedValue(tt.signed, tt.key)
			assert.False(t, ok)
		})
	}
}
