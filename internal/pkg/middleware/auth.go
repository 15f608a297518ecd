package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/usercontext"
)

// RequireAuth ensures a signed-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireGuest keeps signed-in users away from the login and signup pages.
func RequireGuest(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
