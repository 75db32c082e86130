package main

import (
	"context"
	"os"
	"time"

	"project_travelSafe/internal/config"
	"project_travelSafe/internal/infrastructure"
	"project_travelSafe/internal/interfaces"
	"project_travelSafe/internal/interfaces/http"
	"project_travelSafe/internal/logger"
	"project_travelSafe/internal/usecases"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// AI client is mandatory; the service is useless without it.
	geminiClient, err := infrastructure.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Generation)
	if err != nil {
		log.WithError(err).Error("failed to create Gemini client", nil)
		os.Exit(1)
	}

	// Geo sources are optional; without a Maps key the chat still works,
	// the geo safety path just never runs.
	var (
		placesSource     interfaces.PlacesSource
		directionsSource interfaces.DirectionsSource
	)
	if cfg.MapsAPIKey != "" {
		mapsClient := infrastructure.NewMapsClient(cfg.MapsAPIKey, cfg.MapsBaseURL, 10*time.Second)
		placesSource = mapsClient
		directionsSource = mapsClient
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set, geo safety path disabled", nil)
	}

	factsSource := infrastructure.NewSafetyFactsClient(cfg.SafetyAPIBaseURL, 10*time.Second)

	aggregator := usecases.NewSafetyAggregator(factsSource, placesSource, directionsSource, cfg.SafetyRadiusMeters, log)

	chatService := usecases.NewChatService(geminiClient, aggregator, log)

	stats := infrastructure.NewStats()
	chatService.Recorder = stats

	// Admin surface only comes up with full credentials.
	var authUsecase *usecases.AuthUsecase
	if cfg.JWTSecret != "" && cfg.AdminPassword != "" {
		authUsecase, err = usecases.NewAuthUsecase(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Error("failed to initialize admin auth", nil)
			os.Exit(1)
		}
	} else {
		log.Warn("admin endpoints disabled (JWT_SECRET or ADMIN_PASSWORD missing)", nil)
	}

	middleware := http.NewMiddleware(cfg.JWTSecret)

	r := gin.Default()
	http.SetupRoutes(r, chatService, authUsecase, stats, middleware, log)

	// Telegram polling
	if cfg.TelegramBotToken != "" {
		bot, err := infrastructure.NewTelegramBot(cfg.TelegramBotToken, chatService, log)
		if err != nil {
			log.WithError(err).Warn("telegram disabled (token invalid)", nil)
		} else {
			go bot.Run(ctx)
		}
	} else {
		log.Info("telegram disabled (token missing), web only", nil)
	}

	log.Info("starting HTTP server", map[string]interface{}{"addr": cfg.ServerAddr})
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.WithError(err).Error("HTTP server failed", nil)
		os.Exit(1)
	}
}
