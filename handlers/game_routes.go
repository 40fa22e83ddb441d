package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"guess-game-service/middleware"
	"guess-game-service/models"
	"guess-game-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func SetupGameRoutes(app *fiber.App, store *session.Store, games *services.GameService, profiles *services.ProfileService, leaderboard *services.LeaderboardService) {
	secured := app.Group("/s", middleware.UserContextMiddleware(store))

	// Fetch the player's current game, creating a medium one when the
	// session has no pointer (or it points at someone else's game).
	secured.Get("/game", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}

		var view *services.GameView
		if gameID, ok := sess.Get(middleware.SessionCurrentGameID).(uint); ok {
			view, err = games.GetActiveGame(c.UserContext(), userID, gameID)
			if err != nil && err != services.ErrGameNotFound {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load game"})
			}
		}

		if view == nil {
			game, err := games.StartGame(c.UserContext(), userID, models.DifficultyMedium)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to start game"})
			}
			sess.Set(middleware.SessionCurrentGameID, game.ID)
			if err := sess.Save(); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
			}
			view, err = games.GetActiveGame(c.UserContext(), userID, game.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load game"})
			}
		}

		top, err := leaderboard.TopScores(c.UserContext(), 5)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load leaderboard"})
		}

		return c.JSON(fiber.Map{
			"game":           view,
			"message":        view.Prompt,
			"feedback_class": "info",
			"leaderboard":    top,
		})
	})

	// Start a fresh game at the requested difficulty and repoint the session.
	secured.Post("/game", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		var req struct {
			Difficulty string `json:"difficulty" form:"difficulty"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		game, err := games.StartGame(c.UserContext(), userID, models.ParseDifficulty(req.Difficulty))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to start game"})
		}

		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}
		sess.Set(middleware.SessionCurrentGameID, game.ID)
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
		}

		view, err := games.GetActiveGame(c.UserContext(), userID, game.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load game"})
		}
		return c.JSON(fiber.Map{
			"game":           view,
			"message":        view.Prompt,
			"feedback_class": "info",
		})
	})

	secured.Post("/game/guess", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		var req struct {
			Guess string `json:"guess" form:"guess"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		// Non-integer input never reaches the evaluator.
		guess, err := strconv.Atoi(strings.TrimSpace(req.Guess))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":          "❌ Please enter a valid number",
				"feedback_class": "error",
			})
		}

		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}
		gameID, ok := sess.Get(middleware.SessionCurrentGameID).(uint)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active game"})
		}

		result, err := games.RecordGuess(c.UserContext(), gameID, userID, guess)
		if err != nil {
			if err == services.ErrGameNotFound {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active game"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record guess"})
		}

		game := result.Game
		low, high := game.Difficulty.Range()
		response := fiber.Map{
			"attempts":   game.Attempts,
			"difficulty": game.Difficulty,
			"game_won":   false,
		}

		switch result.Outcome.Kind {
		case services.OutcomeOutOfRange:
			response["message"] = fmt.Sprintf("❌ Please guess between %d and %d", low, high)
			response["feedback_class"] = "error"

		case services.OutcomeWin:
			profile, err := profiles.RecordWin(c.UserContext(), userID, game.Attempts)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update profile"})
			}
			sess.Delete(middleware.SessionCurrentGameID)
			if err := sess.Save(); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
			}
			response["message"] = fmt.Sprintf("🎉 CORRECT! You won in %d attempts!", game.Attempts)
			response["feedback_class"] = "success"
			response["game_won"] = true
			response["profile"] = profile

		case services.OutcomeMiss:
			msg, class := feedbackFor(result.Outcome)
			response["message"] = msg
			response["feedback_class"] = class
		}

		top, err := leaderboard.TopScores(c.UserContext(), 5)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load leaderboard"})
		}
		response["leaderboard"] = top

		return c.JSON(response)
	})

	// Give up on the current game; counts as a loss and breaks the streak.
	secured.Post("/game/forfeit", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
		}
		gameID, ok := sess.Get(middleware.SessionCurrentGameID).(uint)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active game"})
		}

		game, err := games.Forfeit(c.UserContext(), gameID, userID)
		if err != nil {
			if err == services.ErrGameNotFound {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active game"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to forfeit game"})
		}

		if _, err := profiles.RecordLoss(c.UserContext(), userID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update profile"})
		}

		sess.Delete(middleware.SessionCurrentGameID)
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
		}

		return c.JSON(fiber.Map{
			"message":  fmt.Sprintf("Game over — the number was %d", game.SecretNumber),
			"attempts": game.Attempts,
		})
	})
}

func feedbackFor(out services.Outcome) (message, class string) {
	direction := "Too low"
	if out.Direction == services.TooHigh {
		direction = "Too high"
	}

	switch out.Band {
	case services.BandVeryClose:
		return "🔥 Very Close! " + direction, "hot"
	case services.BandWarm:
		return "🌡️ Warm... " + direction, "warm"
	case services.BandCold:
		return "❄️ Cold... " + direction, "cold"
	default:
		return "❌ Way off! " + direction, "error"
	}
}
