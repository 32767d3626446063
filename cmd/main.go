package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hendriwan/wordduel-service/config"
	"github.com/hendriwan/wordduel-service/db"
	"github.com/hendriwan/wordduel-service/internal/game/handler"
	repo "github.com/hendriwan/wordduel-service/internal/game/repository/postgres"
	"github.com/hendriwan/wordduel-service/internal/game/service"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
	"github.com/hendriwan/wordduel-service/internal/logging"
	"github.com/hendriwan/wordduel-service/internal/migrations"
	"github.com/hendriwan/wordduel-service/internal/wordcrypto"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()
	logger := logging.NewJSONLogger()

	if err := migrations.Run(ctx, cfg.DBURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	codec, err := wordcrypto.NewCodec(cfg.WordSecret)
	if err != nil {
		log.Fatalf("word codec init failed: %v", err)
	}
	signer, err := gamestate.NewSigner(cfg.StateSecret)
	if err != nil {
		log.Fatalf("state signer init failed: %v", err)
	}

	gameRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret)
	gameService := service.NewGameService(gameRepo, codec, signer, cfg, logger)
	gameHandler := handler.NewGameHandler(gameService, tokenService, cfg)

	// Pre-fill the daily schedule so the first guess of the day never
	// races the seeding path.
	if err := gameService.EnsureSeeded(ctx, gamestate.TodayUTC(), cfg.DailySeedDays); err != nil {
		logger.Warn(ctx, "daily word seeding failed", "error", err)
	}

	app := fiber.New()
	handler.RegisterRoutes(app, gameHandler)

	logger.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
