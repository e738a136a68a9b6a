// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	IdentityService IdentityService
	TaskService     TaskService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. identityProvider may be nil
// when no external provider is configured.
func NewServices(storages *store.Storages, identityProvider adapter.IdentityProvider, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		IdentityService: NewIdentityService(identityProvider, storages.UserRepository, logger),
		TaskService:     NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
