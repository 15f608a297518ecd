package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/QuoteFox/app/controllers"
)

type HttpRouter struct {
	web      *controllers.WebController
	sessions *session.Store
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(deps Dependencies) *HttpRouter {
	return &HttpRouter{
		web:      controllers.NewWebController(deps.Auth, deps.Sessions, deps.Records, deps.Checkouts),
		sessions: deps.Sessions,
	}
}
