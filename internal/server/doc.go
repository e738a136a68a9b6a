// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the task API over HTTP and the health service over
// gRPC. Both listeners stop together on SIGINT, SIGTERM or SIGQUIT.
package server
