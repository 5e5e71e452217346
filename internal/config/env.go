// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Names come from the
// `env` and `envPrefix` tags of [StructuredConfig], e.g. VAULT_PATH or
// KDF_MEMORY. Unset variables leave their fields zero so that lower
// priority sources still apply.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
