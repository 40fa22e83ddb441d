package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"guess-game-service/config"
	"guess-game-service/handlers"
	"guess-game-service/middleware"
	"guess-game-service/models"
	"guess-game-service/repository"
	"guess-game-service/services"
	"guess-game-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 5 * 1024 * 1024, // avatars are the only upload
	})

	app.Use(middleware.RequestLogger())

	allowedOriginsList := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOriginsList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	store := session.New(session.Config{
		Expiration:     cfg.SessionLifetime,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.PlayerProfile{},
		&models.Game{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	gameRepo := repository.NewGameRepository(db)

	gameService := services.NewGameService(gameRepo)
	profileService := services.NewProfileService(profileRepo)
	leaderboardService := services.NewLeaderboardService(profileRepo)

	avatarsEnabled, err := utils.InitAvatarStorage()
	if err != nil {
		log.Fatal("failed to initialize avatar storage:", err)
	}
	if !avatarsEnabled {
		log.Println("⚠️  R2 credentials not set — avatar uploads disabled")
	}

	handlers.SetupAuthRoutes(app, store, userRepo, profileService)
	handlers.SetupGameRoutes(app, store, gameService, profileService, leaderboardService)
	handlers.SetupProfileRoutes(app, store, userRepo, profileService, leaderboardService)
	handlers.SetupAdminRoutes(app, store, userRepo, cfg.AdminPassword)

	gameService.StartAbandonSweeper(profileService, cfg.GameAbandonAfter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.ServerPort)
	log.Printf("✅ Abandoned games swept after %s", cfg.GameAbandonAfter)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
