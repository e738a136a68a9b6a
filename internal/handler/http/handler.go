// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	session sessionSettings

	// hashKey signs the OAuth state cookie.
	hashKey string

	// postLoginRedirect is where a browser goes after provider sign-in.
	// Empty means the callback answers with JSON.
	postLoginRedirect string

	corsOrigins    []string
	requestTimeout time.Duration

	metrics *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		session: sessionSettings{
			cookieName: cfg.App.CookieName,
			secure:     cfg.App.CookieSecure,
			maxAge:     cfg.App.TokenDuration,
		},
		hashKey:           cfg.App.HashKey,
		postLoginRedirect: cfg.App.PostLoginRedirect,
		corsOrigins:       cfg.Server.CORSOrigins,
		requestTimeout:    cfg.Server.RequestTimeout,
		metrics:           newMetrics(),
		logger:            logger,
	}
}
