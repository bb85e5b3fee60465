// Package config backs the generator CLIs: environment variables supply
// configuration defaults (CAT_RNG_* for the cat-rng driver), flags
// override them, and startup failures exit through Exitf.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target from environment variables according to its
// `env` struct tags. Callers run it before flag parsing so flags win
// over the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
