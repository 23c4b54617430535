// Package config loads process-wide settings from environment variables,
// once at startup. The values feed the emitter configuration so no
// environment lookups happen during emission.
package config

import (
	"os"

	"github.com/ik5/wav2c/carray"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	// Types are the C type names to emit, overridable per width for
	// toolchains that spell their fixed-width types differently.
	Types carray.TypeNames
}

// Load reads configuration from environment variables with the standard
// <stdint.h>/<stddef.h> type names as defaults.
func Load() Config {
	defaults := carray.DefaultTypeNames()

	return Config{
		Types: carray.TypeNames{
			U8:   envStr("WAV2C_TYPE_8BIT", defaults.U8),
			I16:  envStr("WAV2C_TYPE_16BIT", defaults.I16),
			I32:  envStr("WAV2C_TYPE_32BIT", defaults.I32),
			Size: envStr("WAV2C_TYPE_SIZE", defaults.Size),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
