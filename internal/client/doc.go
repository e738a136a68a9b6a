// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// Every invocation runs a single subcommand against the server through
// adapter.ServerAdapter. The session token survives between invocations in
// a TokenStore file.
package client
