package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
//
// When environ is nil the process environment is used; callers pass an
// explicit map to keep parsing hermetic in tests.
func ParseEnv(target any, environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(target)
	} else {
		err = env.ParseWithOptions(target, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
