package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/auth"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/metrics/counter"
	isession "github.com/ManuelReschke/QuoteFox/internal/pkg/session"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// WebController serves the HTML pages. Per-visitor state (sign in, cart,
// payment confirmation) lives in the session; the controller itself only
// holds shared services.
type WebController struct {
	auth      *auth.Service
	sessions  *session.Store
	records   *gateway.Store
	checkouts counter.Recorder
}

func NewWebController(authService *auth.Service, sessions *session.Store, records *gateway.Store, checkouts counter.Recorder) *WebController {
	return &WebController{
		auth:      authService,
		sessions:  sessions,
		records:   records,
		checkouts: checkouts,
	}
}

// page builds the layout for a view and counts the visitor's cart entries.
func (w *WebController) page(c *fiber.Ctx, sess *session.Session, name, title string) viewmodel.Layout {
	layout := viewmodel.NewLayout(c, name, title, flash.Get(c))
	if sess != nil {
		layout.CartCount = isession.LoadCart(sess).Len()
	}
	return layout
}

func render(c *fiber.Ctx, status int, view string, layout viewmodel.Layout, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout
	return c.Status(status).Render(view, data, mainLayout)
}

// flashError redirects with an error message for the next page.
func flashError(c *fiber.Ctx, message, location string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(location)
}

func flashSuccess(c *fiber.Ctx, message, location string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(location)
}

// loadCart returns the visitor's session together with the cart stored in it.
func (w *WebController) loadCart(c *fiber.Ctx) (*session.Session, *cart.Cart, error) {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return nil, nil, err
	}
	return sess, isession.LoadCart(sess), nil
}

func saveCart(sess *session.Session, items *cart.Cart) error {
	if err := isession.SaveCart(sess, items); err != nil {
		return err
	}
	return sess.Save()
}
