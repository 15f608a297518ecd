package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/claims"
)

func (w *WebController) HandleClaims(c *fiber.Ctx) error {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, "claims", w.page(c, sess, "claims", "Claims"), fiber.Map{
		"Claims": claims.Sample(),
	})
}
