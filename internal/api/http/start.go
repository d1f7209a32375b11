package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/api/http/router"
	"github.com/physiofit/clinic_backend/internal/app"
)

// Start wires the full application graph and blocks until shutdown.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces NewServer to run, which registers
		// the listen/shutdown lifecycle hooks.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
