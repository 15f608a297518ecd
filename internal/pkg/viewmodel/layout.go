package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/usercontext"
)

type Layout struct {
	Title      string
	Page       string
	IsLoggedIn bool
	Username   string
	Msg        fiber.Map
	CSRF       string
	CartCount  int
}

// NewLayout fills the layout fields shared by every page from the request.
func NewLayout(c *fiber.Ctx, page, title string, msg fiber.Map) Layout {
	user := usercontext.GetUserContext(c)
	csrf, _ := c.Locals("csrf").(string)
	return Layout{
		Title:      title,
		Page:       page,
		IsLoggedIn: user.IsLoggedIn,
		Username:   user.DisplayName(),
		Msg:        msg,
		CSRF:       csrf,
	}
}
