package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/QuoteFox/app/controllers"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
)

type ApiRouter struct {
	api *controllers.APIController
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        env.GetEnvInt("API_RATE_LIMIT", 120),
		Expiration: 1 * time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	api.Get("/customers", h.api.HandleCustomerList)
	api.Post("/customers", h.api.HandleCustomerCreate)
	api.Put("/customers/:id", h.api.HandleCustomerUpdate)
	api.Delete("/customers/:id", h.api.HandleCustomerDelete)

	api.Get("/policies", h.api.HandlePolicyList)
	api.Post("/policies", h.api.HandlePolicyCreate)
	api.Put("/policies/:id", h.api.HandlePolicyUpdate)
	api.Delete("/policies/:id", h.api.HandlePolicyDelete)

	api.Get("/stats", h.api.HandleStats)
}

func NewApiRouter(deps Dependencies) *ApiRouter {
	return &ApiRouter{api: controllers.NewAPIController(deps.Backend, deps.Checkouts)}
}
