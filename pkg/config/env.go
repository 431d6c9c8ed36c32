package config

import (
	"fmt"
	"os"
)

// envVarPrefix is the prefix for all lintreport environment variables.
const envVarPrefix = "LINTREPORT_"

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]string{
	"OUTPUT":      "output",
	"ENCODING":    "encoding",
	"LOG_LEVEL":   "log_level",
	"WORKING_DIR": "working_dir",
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LINTREPORT_ (e.g., LINTREPORT_OUTPUT).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, field := range envMappings {
		value := os.Getenv(envVarPrefix + envSuffix)
		if value == "" {
			continue
		}
		if err := setStringField(cfg, field, value); err != nil {
			return err
		}
	}

	return nil
}

// setStringField sets a string field on the config by field name.
func setStringField(cfg *Config, field, value string) error {
	switch field {
	case "output":
		cfg.Output = value
	case "encoding":
		cfg.Encoding = value
	case "log_level":
		cfg.LogLevel = value
	case "working_dir":
		cfg.WorkingDir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapped := range envMappings {
		if mapped == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}
