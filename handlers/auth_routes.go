package handlers

import (
	"strings"
	"unicode/utf8"

	"guess-game-service/middleware"
	"guess-game-service/models"
	"guess-game-service/repository"
	"guess-game-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

func SetupAuthRoutes(app *fiber.App, store *session.Store, users repository.UserRepository, profiles *services.ProfileService) {
	// Guest login: a nickname is all it takes to start playing.
	app.Post("/auth/guest", func(c *fiber.Ctx) error {
		var req struct {
			Nickname string `json:"nickname" form:"nickname"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		nickname := strings.TrimSpace(norm.NFC.String(req.Nickname))
		if n := utf8.RuneCountInString(nickname); n < 2 || n > 20 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid nickname (2-20 characters)",
			})
		}

		externalID := "guest-" + uuid.NewString()
		user := &models.User{
			Name:       nickname,
			Handle:     slug.Make(nickname),
			ExternalID: &externalID,
		}
		if err := users.Create(c.UserContext(), user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create user",
			})
		}

		// Profile is created up front so the player shows up in the admin
		// view immediately; GetProfile is the same lazy-create path the
		// profile page uses.
		if _, err := profiles.GetProfile(c.UserContext(), user.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create profile",
			})
		}

		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}
		sess.Set(middleware.SessionUserID, user.ID)
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
		}

		return c.JSON(user)
	})

	app.Post("/auth/logout", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err == nil {
			_ = sess.Destroy()
		}
		return c.JSON(fiber.Map{"message": "logged out"})
	})
}
