package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guess-game-service/models"
	"guess-game-service/repository"
	"guess-game-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminPassword = "letmein"

type testApp struct {
	app     *fiber.App
	db      *gorm.DB
	games   *services.GameService
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.PlayerProfile{}, &models.Game{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	gameRepo := repository.NewGameRepository(db)

	gameService := services.NewGameService(gameRepo)
	profileService := services.NewProfileService(profileRepo)
	leaderboardService := services.NewLeaderboardService(profileRepo)

	store := session.New(session.Config{Expiration: time.Hour})

	app := fiber.New()
	SetupAuthRoutes(app, store, userRepo, profileService)
	SetupGameRoutes(app, store, gameService, profileService, leaderboardService)
	SetupProfileRoutes(app, store, userRepo, profileService, leaderboardService)
	SetupAdminRoutes(app, store, userRepo, testAdminPassword)

	return &testApp{app: app, db: db, games: gameService}
}

// request sends a JSON request carrying the session cookies collected so far
// and keeps any new ones, so one testApp behaves like one browser.
func (ta *testApp) request(t *testing.T, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range ta.cookies {
		req.AddCookie(cookie)
	}

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	if cookies := resp.Cookies(); len(cookies) > 0 {
		ta.cookies = cookies
	}

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func (ta *testApp) loginGuest(t *testing.T, nickname string) {
	t.Helper()

	resp, _ := ta.request(t, "POST", "/auth/guest", map[string]interface{}{"nickname": nickname})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("guest login failed with status %d", resp.StatusCode)
	}
}
