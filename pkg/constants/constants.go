// Package constants holds project-wide fixed values shared across packages.
package constants

const (
	// ConfigName is the config file name viper looks for (without extension).
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix prefixes environment variable overrides,
	// e.g. CLINIC_DATABASE_HOST overrides database.host.
	EnvPrefix = "CLINIC"
)
