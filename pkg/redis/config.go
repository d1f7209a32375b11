package redis

import (
	"time"

	"github.com/physiofit/clinic_backend/config"
)

type Config struct {
	Addr                string
	Username            string
	Password            string
	DB                  int
	PoolSize            int
	MinIdleConns        int
	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		Addr:                "localhost:6379",
		DB:                  0,
		PoolSize:            10,
		MinIdleConns:        2,
		DialTimeoutSeconds:  5,
		ReadTimeoutSeconds:  3,
		WriteTimeoutSeconds: 3,
	}
}

func (c Config) DialTimeout() time.Duration {
	if c.DialTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// FromCentralConfig maps the central redis section onto this package's
// Config, filling unset fields from DefaultConfig.
func FromCentralConfig(cfg config.RedisConfig) Config {
	def := DefaultConfig()

	out := Config{
		Addr:                cfg.Addr,
		Username:            cfg.Username,
		Password:            cfg.Password,
		DB:                  cfg.DB,
		PoolSize:            cfg.PoolSize,
		MinIdleConns:        cfg.MinIdleConns,
		DialTimeoutSeconds:  cfg.DialTimeoutSeconds,
		ReadTimeoutSeconds:  cfg.ReadTimeoutSeconds,
		WriteTimeoutSeconds: cfg.WriteTimeoutSeconds,
	}

	if out.Addr == "" {
		out.Addr = def.Addr
	}
	if out.PoolSize == 0 {
		out.PoolSize = def.PoolSize
	}
	if out.MinIdleConns == 0 {
		out.MinIdleConns = def.MinIdleConns
	}
	if out.DialTimeoutSeconds == 0 {
		out.DialTimeoutSeconds = def.DialTimeoutSeconds
	}
	if out.ReadTimeoutSeconds == 0 {
		out.ReadTimeoutSeconds = def.ReadTimeoutSeconds
	}
	if out.WriteTimeoutSeconds == 0 {
		out.WriteTimeoutSeconds = def.WriteTimeoutSeconds
	}

	return out
}
