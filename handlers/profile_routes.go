package handlers

import (
	"path/filepath"
	"strconv"

	"guess-game-service/middleware"
	"guess-game-service/models"
	"guess-game-service/repository"
	"guess-game-service/services"
	"guess-game-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const maxAvatarSize = 2 * 1024 * 1024 // 2MB

func SetupProfileRoutes(app *fiber.App, store *session.Store, users repository.UserRepository, profiles *services.ProfileService, leaderboard *services.LeaderboardService) {
	// Public leaderboard; ?limit= trims the ranking, capped at 100.
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		if limit < 0 || limit > 100 {
			limit = 100
		}

		entries, err := leaderboard.TopScores(c.UserContext(), limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load leaderboard"})
		}
		return c.JSON(fiber.Map{"leaderboard": entries})
	})

	secured := app.Group("/s", middleware.UserContextMiddleware(store))

	secured.Get("/profile", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}

		profile, err := profiles.GetProfile(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load profile"})
		}

		badges := make([]models.AchievementInfo, 0, len(profile.Achievements))
		for _, code := range profile.Achievements {
			badges = append(badges, code.Info())
		}

		return c.JSON(fiber.Map{
			"player_name": user.Name,
			"handle":      user.Handle,
			"avatar_url":  user.AvatarURL,
			"profile":     profile,
			"badges":      badges,
		})
	})

	if utils.AvatarStorageEnabled() {
		secured.Post("/profile/avatar", func(c *fiber.Ctx) error {
			userID := middleware.UserID(c)

			avatarFile, err := c.FormFile("avatar")
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
			}
			if avatarFile.Size > maxAvatarSize {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar too large (max 2MB)"})
			}

			ext := filepath.Ext(avatarFile.Filename)
			if ext == "" {
				ext = ".png"
			}
			url, err := utils.UploadAvatar(avatarFile, "avatars/"+uuid.NewString()+ext)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload avatar"})
			}

			user, err := users.GetByID(c.UserContext(), userID)
			if err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			user.AvatarURL = &url
			if err := users.Save(c.UserContext(), user); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save avatar"})
			}

			return c.JSON(fiber.Map{"avatar_url": url})
		})
	}
}
