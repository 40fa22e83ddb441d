package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRequiresLogin(t *testing.T) {
	ta := newTestApp(t)

	resp, _ := ta.request(t, "GET", "/s/game", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetGameCreatesMediumByDefault(t *testing.T) {
	ta := newTestApp(t)
	ta.loginGuest(t, "alice")

	resp, result := ta.request(t, "GET", "/s/game", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	game := result["game"].(map[string]interface{})
	assert.Equal(t, "medium", game["difficulty"])
	assert.Equal(t, float64(0), game["attempts"])
	assert.Equal(t, float64(1), game["low"])
	assert.Equal(t, float64(100), game["high"])
	assert.Equal(t, "info", result["feedback_class"])

	// Same session keeps the same game.
	_, again := ta.request(t, "GET", "/s/game", nil)
	assert.Equal(t, game["id"], again["game"].(map[string]interface{})["id"])
}

func TestGuestNicknameValidation(t *testing.T) {
	ta := newTestApp(t)

	resp, _ := ta.request(t, "POST", "/auth/guest", map[string]interface{}{"nickname": "x"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = ta.request(t, "POST", "/auth/guest", map[string]interface{}{"nickname": "this nickname is far too long"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFullGameFlow(t *testing.T) {
	ta := newTestApp(t)
	ta.loginGuest(t, "alice")
	ta.games.Rand = func(low, high int) int { return 250 }

	resp, result := ta.request(t, "POST", "/s/game", map[string]interface{}{"difficulty": "hard"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	game := result["game"].(map[string]interface{})
	assert.Equal(t, "hard", game["difficulty"])
	assert.Equal(t, float64(500), game["high"])

	// Way off, too low.
	resp, result = ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "200"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "error", result["feedback_class"])
	assert.Contains(t, result["message"], "Too low")
	assert.Equal(t, float64(1), result["attempts"])
	assert.Equal(t, false, result["game_won"])

	// Very close.
	resp, result = ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "245"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "hot", result["feedback_class"])
	assert.Equal(t, float64(2), result["attempts"])

	// Win.
	resp, result = ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "250"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", result["feedback_class"])
	assert.Equal(t, true, result["game_won"])
	assert.Equal(t, float64(3), result["attempts"])

	profile := result["profile"].(map[string]interface{})
	assert.Equal(t, float64(1), profile["games_won"])
	assert.Equal(t, float64(3), profile["best_score"])
	assert.Equal(t, float64(1), profile["current_streak"])

	// The session pointer was cleared, so another guess has no game.
	resp, _ = ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "250"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// The winner shows up on the public leaderboard.
	resp, result = ta.request(t, "GET", "/leaderboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	entries := result["leaderboard"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "alice", entry["name"])
	assert.Equal(t, float64(3), entry["best_score"])
}

func TestGuessValidation(t *testing.T) {
	ta := newTestApp(t)
	ta.loginGuest(t, "alice")
	ta.games.Rand = func(low, high int) int { return 42 }

	_, _ = ta.request(t, "POST", "/s/game", map[string]interface{}{"difficulty": "easy"})

	// Non-integer input is rejected before the evaluator.
	resp, result := ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "not a number"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", result["feedback_class"])

	// Out of range comes back as a re-prompt and does not count.
	resp, result = ta.request(t, "POST", "/s/game/guess", map[string]interface{}{"guess": "51"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "error", result["feedback_class"])
	assert.Contains(t, result["message"], "between 1 and 50")
	assert.Equal(t, float64(0), result["attempts"])
}

func TestForfeitCountsAsLoss(t *testing.T) {
	ta := newTestApp(t)
	ta.loginGuest(t, "alice")
	ta.games.Rand = func(low, high int) int { return 42 }

	_, _ = ta.request(t, "POST", "/s/game", map[string]interface{}{"difficulty": "easy"})

	resp, result := ta.request(t, "POST", "/s/game/forfeit", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, result["message"], "42")

	resp, result = ta.request(t, "GET", "/s/profile", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	profile := result["profile"].(map[string]interface{})
	assert.Equal(t, float64(1), profile["games_lost"])
	assert.Equal(t, float64(0), profile["current_streak"])

	// No active game left to forfeit.
	resp, _ = ta.request(t, "POST", "/s/game/forfeit", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
