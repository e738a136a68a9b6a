// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from `env`/`envPrefix` tags. Unset variables leave the
// zero value, so later sources and applyDefaults decide.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment configs: %w", err)
	}
	return nil
}
