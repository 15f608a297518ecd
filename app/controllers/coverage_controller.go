package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/coverage"
)

// coverageCard is an option of the catalog together with the level the
// visitor currently has in the cart.
type coverageCard struct {
	coverage.Option
	SelectedLevel string
}

func coverageCards(options []coverage.Option, items *cart.Cart) []coverageCard {
	cards := make([]coverageCard, 0, len(options))
	for _, o := range options {
		card := coverageCard{Option: o}
		if sel, ok := items.Get(o.ID); ok {
			if level, ok := coverage.LevelFor(sel); ok {
				card.SelectedLevel = level.ID
			}
		}
		cards = append(cards, card)
	}
	return cards
}

func (w *WebController) HandleCoverage(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}

	return render(c, fiber.StatusOK, "coverage", w.page(c, sess, "coverage", "Coverage"), fiber.Map{
		"Property":  coverageCards(coverage.Property(), items),
		"Liability": coverageCards(coverage.Liability(), items),
		"Cart":      items,
	})
}

// HandleCoverageSelect puts the chosen level into the cart, replacing any
// other level of the same option.
func (w *WebController) HandleCoverageSelect(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}

	sel, err := coverage.Selection(c.FormValue("option"), c.FormValue("level"))
	if err != nil {
		return flashError(c, "Please choose a valid coverage level", "/coverage")
	}

	items.AddOrReplace(sel)
	if err := saveCart(sess, items); err != nil {
		return err
	}
	return c.Redirect("/coverage", fiber.StatusSeeOther)
}

func (w *WebController) HandleCoverageRemove(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}

	items.Remove(c.Params("id"))
	if err := saveCart(sess, items); err != nil {
		return err
	}

	back := "/coverage"
	if c.FormValue("from") == "premium" {
		back = "/premium"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
