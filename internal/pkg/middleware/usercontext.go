package middleware

import (
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/session"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/usercontext"
)

// UserContext loads the signed-in visitor from the session into the request
// locals. Requests without a session continue as anonymous.
func UserContext(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
			return c.Next()
		}

		email := session.GetString(sess, session.KeyEmail)
		if email == "" {
			c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
			return c.Next()
		}

		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			Email:      email,
			FirstName:  session.GetString(sess, session.KeyFirstName),
			LastName:   session.GetString(sess, session.KeyLastName),
			IsLoggedIn: true,
		})
		return c.Next()
	}
}
