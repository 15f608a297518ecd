package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/auth"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/metrics/counter"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the shared services handed to the controllers. They are
// created once in main.
type Dependencies struct {
	// Backend serves the JSON API.
	Backend gateway.Backend
	// Records feeds the customer/policy page.
	Records   *gateway.Store
	Auth      *auth.Service
	Sessions  *session.Store
	Checkouts counter.Recorder
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// API first so its routes are never wrapped by the CSRF group.
	setup(app, NewApiRouter(deps), NewHttpRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
