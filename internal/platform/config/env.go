// Package config reads process configuration from environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target's env-tagged fields from the process environment,
// applying envDefault values for keys that are unset. target must be a
// pointer to a struct.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is nil")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("environment config: %w", err)
	}
	return nil
}
