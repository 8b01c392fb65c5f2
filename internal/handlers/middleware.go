package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

const sessionLocalKey = "session"

// RequireSession guards protected routes. Requests without a live session
// get 401 plus a redirect hint and never reach the handler.
func RequireSession(sessions services.SessionStore, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return unauthenticated(c)
		}

		session, err := sessions.Get(c.Context(), token)
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals(sessionLocalKey, session)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by RequireSession.
func SessionFromCtx(c *fiber.Ctx) (services.Session, bool) {
	session, ok := c.Locals(sessionLocalKey).(services.Session)
	return session, ok
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "Authentication required",
		"redirect": "/login",
	})
}
