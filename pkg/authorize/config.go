package authorize

import "github.com/physiofit/clinic_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// CasbinModelPath is the path to the Casbin model configuration file
	CasbinModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool

	// AdminBypass allows admins to bypass all authorization checks
	AdminBypass bool

	// PolicySyncEnabled enables policy synchronization across distributed instances
	PolicySyncEnabled bool

	// HealthCheckEnabled enables health monitoring for policy loading
	HealthCheckEnabled bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		CasbinModelPath:    "casbin_model.conf",
		EnableAudit:        true,
		AdminBypass:        true,
		PolicySyncEnabled:  false,
		HealthCheckEnabled: true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	return Config{
		CasbinModelPath:    c.CasbinModelPath,
		EnableAudit:        c.EnableAudit,
		AdminBypass:        c.AdminBypass,
		PolicySyncEnabled:  c.PolicySyncEnabled,
		HealthCheckEnabled: c.HealthCheckEnabled,
	}
}
