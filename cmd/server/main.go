// @title         askgemini API
// @version       1.0
// @description   Relays questions to Gemini and returns answers in a small markdown subset.
// @BasePath      /
// @schemes       http
// @host          localhost:3000
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/artem13815/askgemini/docs"

	// internal imports
	"github.com/artem13815/askgemini/api/http"
	"github.com/artem13815/askgemini/api/http/handlers"
	"github.com/artem13815/askgemini/pkg/ask"
	"github.com/artem13815/askgemini/pkg/config"
	"github.com/artem13815/askgemini/pkg/health"
	"github.com/artem13815/askgemini/pkg/health/checkers"
	"github.com/artem13815/askgemini/pkg/llm/gemini"
	"github.com/artem13815/askgemini/pkg/logger"
)

func main() {
	// Load configuration from env/.env (and CONFIG_FILE if set)
	boot := zap.Must(zap.NewProduction())
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		boot.Fatal("init logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	// Refuse to start without a credential instead of failing every request.
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	geminiClient := gemini.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiTimeout)
	askUC := ask.NewService(geminiClient, cfg.GeminiAPIKey != "")
	askHandler := handlers.NewAskHandler(askUC, log)

	readiness := health.NewService(checkers.NewGeminiChecker(geminiClient))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := http.NewApp()
	http.Register(app, log, askHandler, healthHandler, cfg.StaticDir)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("HTTP server listening",
		zap.String("addr", ":"+cfg.Port),
		zap.String("model", geminiClient.Model()),
		zap.String("visit", "http://localhost:"+cfg.Port),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
