package handlers

import (
	"crypto/subtle"
	"sort"
	"strconv"

	"guess-game-service/middleware"
	"guess-game-service/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func SetupAdminRoutes(app *fiber.App, store *session.Store, users repository.UserRepository, adminPassword string) {
	app.Post("/admin/login", func(c *fiber.Ctx) error {
		if adminPassword == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "admin login disabled — ADMIN_PASSWORD not set",
			})
		}

		var req struct {
			Password string `json:"password" form:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
		}

		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}
		sess.Set(middleware.SessionIsAdmin, true)
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
		}

		return c.JSON(fiber.Map{"message": "admin session started"})
	})

	app.Post("/admin/logout", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err == nil {
			sess.Delete(middleware.SessionIsAdmin)
			_ = sess.Save()
		}
		return c.JSON(fiber.Map{"message": "admin session ended"})
	})

	admin := app.Group("/admin", middleware.AdminOnlyMiddleware(store))

	admin.Get("/dashboard", func(c *fiber.Ctx) error {
		all, err := users.ListWithProfiles(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load users"})
		}

		type playerStats struct {
			ID            uint   `json:"id"`
			Name          string `json:"name"`
			Email         string `json:"email"`
			GamesWon      int    `json:"games_won"`
			GamesLost     int    `json:"games_lost"`
			BestScore     *int   `json:"best_score"`
			CurrentStreak int    `json:"current_streak"`
			TotalAttempts int    `json:"total_attempts"`
			Achievements  int    `json:"achievements"`
		}

		players := make([]playerStats, 0, len(all))
		for _, u := range all {
			if u.Profile == nil {
				continue
			}
			email := "Guest"
			if u.Email != nil {
				email = *u.Email
			}
			players = append(players, playerStats{
				ID:            u.ID,
				Name:          u.Name,
				Email:         email,
				GamesWon:      u.Profile.GamesWon,
				GamesLost:     u.Profile.GamesLost,
				BestScore:     u.Profile.BestScore,
				CurrentStreak: u.Profile.CurrentStreak,
				TotalAttempts: u.Profile.TotalAttempts,
				Achievements:  len(u.Profile.Achievements),
			})
		}

		sort.Slice(players, func(i, j int) bool {
			return players[i].GamesWon > players[j].GamesWon
		})

		return c.JSON(fiber.Map{
			"players":     players,
			"total_users": len(all),
		})
	})

	admin.Get("/users", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit <= 0 || limit > 100 {
			limit = 50
		}

		found, err := users.Search(c.UserContext(), c.Query("q", ""), limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "search failed"})
		}
		return c.JSON(found)
	})

	// Removing a user cascades to its profile and games.
	admin.Delete("/users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
		}

		if err := users.Delete(c.UserContext(), uint(id)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
		}
		return c.JSON(fiber.Map{"message": "user deleted"})
	})
}
