// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// SignValue returns "value.signature" where signature is HashString(value).
// value must not contain a dot.
func SignValue(value, hashKey string) string {
	return value + "." + HashString(value, hashKey)
}

// VerifySignedValue checks a string produced by SignValue and returns the
// original value. The comparison is constant time.
func VerifySignedValue(signed, hashKey string) (string, bool) {
	value, signature, found := strings.Cut(signed, ".")
	if !found || value == "" || signature == "" {
		return "", false
	}

	expected := HashString(value, hashKey)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", false
	}

	return value, true
}
