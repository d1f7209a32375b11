package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/repo"
	"github.com/physiofit/clinic_backend/pkg/authorize"
	"github.com/physiofit/clinic_backend/pkg/crypto"
	"github.com/physiofit/clinic_backend/pkg/database"
	"github.com/physiofit/clinic_backend/pkg/email"
	"github.com/physiofit/clinic_backend/pkg/observability"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
	redispkg "github.com/physiofit/clinic_backend/pkg/redis"
)

// EncryptionKey is the AES-256 key for patient identifier fields. A named
// type keeps the fx graph unambiguous about which []byte this is.
type EncryptionKey []byte

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvidePasetoManager),
	fx.Provide(ProvideEncryptionKey),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	dsn := database.NewDSN(cfg.CasbinDatabase)
	enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
	if err != nil {
		return nil, err
	}
	auth, err := authorize.NewAuthorization(enforcer, cfg.Authorization.AdminBypass)
	if err != nil {
		cleanup(context.Background())
		return nil, err
	}
	if cfg.Authorization.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("cleaning up Casbin enforcer")
			cleanup(ctx)
			return nil
		},
	})
	return auth, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideEncryptionKey(cfg *config.Config) (EncryptionKey, error) {
	if cfg.Authentication.EncryptionKey == "" {
		return nil, nil
	}
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return EncryptionKey(key), nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(),
		observability.FromCentralConfig(cfg.Observability, cfg.Server.Environment))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
