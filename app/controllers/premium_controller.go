package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
)

// HandlePremium shows the cart with subtotal, tax and total. There is
// nothing to price without coverage, so an empty cart goes back to the
// catalog.
func (w *WebController) HandlePremium(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}
	if items.IsEmpty() {
		return c.Redirect("/coverage", fiber.StatusSeeOther)
	}

	return render(c, fiber.StatusOK, "premium", w.page(c, sess, "premium", "Premium"), fiber.Map{
		"Cart":    items,
		"TaxRate": cart.TaxRate * 100,
	})
}

func (w *WebController) HandlePremiumClear(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}

	items.Clear()
	if err := saveCart(sess, items); err != nil {
		return err
	}
	return c.Redirect("/coverage", fiber.StatusSeeOther)
}
