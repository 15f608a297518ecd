package usercontext

import "github.com/gofiber/fiber/v2"

// Locals key holding the UserContext of a request
const KeyUserContext = "USER_CONTEXT"

// UserContext represents the signed-in visitor of a request
type UserContext struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// DisplayName is the first name, falling back to the email address.
func (u UserContext) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return ctx
	}
	return UserContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}
