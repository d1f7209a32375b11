package app

import (
	"entgo.io/ent/dialect"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/repo"
	"github.com/physiofit/clinic_backend/internal/service/analytics"
	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/auth"
	"github.com/physiofit/clinic_backend/internal/service/billing"
	"github.com/physiofit/clinic_backend/internal/service/catalog"
	"github.com/physiofit/clinic_backend/internal/service/inventory"
	"github.com/physiofit/clinic_backend/internal/service/patient"
	"github.com/physiofit/clinic_backend/internal/service/scheduling"
	"github.com/physiofit/clinic_backend/internal/service/user"
	"github.com/physiofit/clinic_backend/pkg/authorize"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvideSchedulingService,
		ProvideBillingService,
		ProvideCatalogService,
		ProvideInventoryService,
		ProvideAnalyticsService,
		ProvideAuditService,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
}

func ProvidePatientService(db *repo.Client, key EncryptionKey) patient.Service {
	return patient.New(db, []byte(key))
}

func ProvideSchedulingService(db *repo.Client, nc *nats.Conn) scheduling.Service {
	return scheduling.New(db, nc, dialect.Postgres)
}

func ProvideBillingService(db *repo.Client) billing.Service {
	return billing.New(db)
}

func ProvideCatalogService(db *repo.Client) catalog.Service {
	return catalog.New(db)
}

func ProvideInventoryService(db *repo.Client) inventory.Service {
	return inventory.New(db)
}

func ProvideAnalyticsService(db *repo.Client) analytics.Service {
	return analytics.New(db)
}

func ProvideAuditService(db *repo.Client) audit.Service {
	return audit.New(db)
}
