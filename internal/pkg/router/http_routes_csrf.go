package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	w := h.web
	group := app.Group("", cors.New(), csrf.New(csrfConf), middleware.UserContext(h.sessions))

	group.Get("/login", middleware.RequireGuest, w.HandleLogin)
	group.Post("/login", middleware.RequireGuest, w.HandleLoginPost)
	group.Get("/signup", middleware.RequireGuest, w.HandleSignup)
	group.Post("/signup", middleware.RequireGuest, w.HandleSignupPost)
	group.Post("/logout", w.HandleLogout)

	group.Get("/", middleware.RequireAuth, w.HandleStart)
	group.Get("/coverage", middleware.RequireAuth, w.HandleCoverage)
	group.Post("/coverage/select", middleware.RequireAuth, w.HandleCoverageSelect)
	group.Post("/coverage/remove/:id", middleware.RequireAuth, w.HandleCoverageRemove)
	group.Get("/premium", middleware.RequireAuth, w.HandlePremium)
	group.Post("/premium/clear", middleware.RequireAuth, w.HandlePremiumClear)
	group.Get("/payment", middleware.RequireAuth, w.HandlePayment)
	group.Post("/payment", middleware.RequireAuth, w.HandlePaymentPost)
	group.Get("/payment-success", middleware.RequireAuth, w.HandlePaymentSuccess)
	group.Get("/claims", middleware.RequireAuth, w.HandleClaims)
	group.Get("/customer-policy", middleware.RequireAuth, w.HandleCustomerPolicy)
	group.Post("/customer-policy/customers", middleware.RequireAuth, w.HandleCustomerPolicyAddCustomer)
	group.Post("/customer-policy/policies", middleware.RequireAuth, w.HandleCustomerPolicyAddPolicy)
}
