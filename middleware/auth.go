package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys shared between middleware and handlers.
const (
	SessionUserID        = "user_id"
	SessionCurrentGameID = "current_game_id"
	SessionIsAdmin       = "is_admin"
)

// UserContextMiddleware resolves the logged-in user from the cookie session
// and attaches the id to the request context. Secured routes sit behind it.
func UserContextMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "session unavailable",
			})
		}

		userID, ok := sess.Get(SessionUserID).(uint)
		if !ok || userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "login required",
			})
		}

		c.Locals(SessionUserID, userID)
		return c.Next()
	}
}

// AdminOnlyMiddleware gates the admin surface on the admin session flag.
func AdminOnlyMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "session unavailable",
			})
		}

		if isAdmin, ok := sess.Get(SessionIsAdmin).(bool); !ok || !isAdmin {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "admin login required",
			})
		}
		return c.Next()
	}
}

// UserID reads the id attached by UserContextMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(SessionUserID).(uint)
	return id
}
