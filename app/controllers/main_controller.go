package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/claims"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/usercontext"
)

// dashboardPolicy is the demo policy shown on the dashboard.
var dashboardPolicy = fiber.Map{
	"PolicyNumber":  "POL-39284756",
	"EffectiveDate": "Apr 15, 2025",
	"ExpiryDate":    "Apr 15, 2026",
	"Status":        "Active",
}

func (w *WebController) HandleStart(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}

	recent := claims.Sample()
	if len(recent) > 1 {
		recent = recent[:1]
	}

	return render(c, fiber.StatusOK, "home", w.page(c, sess, "home", "Dashboard"), fiber.Map{
		"User":    usercontext.GetUserContext(c),
		"Policy":  dashboardPolicy,
		"Cart":    items,
		"Claims":  recent,
		"Support": fiber.Map{"Service": "1-800-555-7890", "Claims": "1-888-555-1234"},
	})
}
