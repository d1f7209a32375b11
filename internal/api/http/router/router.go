package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/api/http/handler"
	"github.com/physiofit/clinic_backend/internal/api/http/middleware"
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

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	Auth          authorize.IAuthorization
	AuthSvc       auth.Service
	UserSvc       user.Service
	PatientSvc    patient.Service
	SchedulingSvc scheduling.Service
	BillingSvc    billing.Service
	CatalogSvc    catalog.Service
	InventorySvc  inventory.Service
	AnalyticsSvc  analytics.Service
	AuditSvc      audit.Service
	PasetoMgr     *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc, r.p.AuditSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.AuditSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.SchedulingSvc, r.p.AuditSvc)
	billingH := handler.NewBillingHandler(r.p.BillingSvc, r.p.AuditSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc, r.p.AuditSvc)
	analyticsH := handler.NewAnalyticsHandler(r.p.AnalyticsSvc)
	auditH := handler.NewAuditHandler(r.p.AuditSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, billingH, authRequired, requirePerm)
	r.registerBillingRoutes(api, billingH, authRequired, requirePerm)
	r.registerCatalogRoutes(api, catalogH, authRequired, requirePerm)
	r.registerInventoryRoutes(api, inventoryH, authRequired, requirePerm)
	r.registerAnalyticsRoutes(api, analyticsH, authRequired, requirePerm)
	r.registerAuditRoutes(api, auditH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
