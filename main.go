package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"arzbot/config"
	"arzbot/internal/bot"
	"arzbot/internal/cache"
	"arzbot/internal/users"
	"arzbot/logger"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(config.ResolvePath(*configPath, "config/config.yml"))
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service":     cfg.Arzbot.Name,
		"version":     cfg.Arzbot.Version,
		"environment": config.AppEnvironment(),
	}).Info("starting arzbot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Metrics.CloudWatch.Enabled {
		logger.InitCloudWatch(
			cfg.Metrics.CloudWatch.Region,
			cfg.Metrics.CloudWatch.Namespace,
			cfg.Metrics.CloudWatch.Dashboard,
		)
	}
	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	currencyCache := cache.NewCurrencyCache(cfg)
	cryptoCache := cache.NewCryptoCache(cfg)

	if err := currencyCache.Start(ctx); err != nil {
		log.WithError(err).Error("failed to start currency cache")
		os.Exit(1)
	}
	if err := cryptoCache.Start(ctx); err != nil {
		log.WithError(err).Error("failed to start crypto cache")
		os.Exit(1)
	}

	store, err := users.NewStore(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("failed to connect user store")
		os.Exit(1)
	}

	app, err := bot.NewApp(cfg, currencyCache, cryptoCache, store)
	if err != nil {
		log.WithError(err).Error("failed to create telegram bot")
		os.Exit(1)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.Run(ctx); err != nil && err != context.Canceled {
			log.WithError(err).Warn("bot update loop exited")
		}
	}()

	log.Info("all components started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")

	log.Info("starting graceful shutdown")
	cancel()

	log.Info("stopping crypto cache")
	cryptoCache.Stop()

	log.Info("stopping currency cache")
	currencyCache.Stop()

	if err := store.Close(); err != nil {
		log.WithError(err).Warn("failed to close user store")
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("graceful shutdown completed")
	case <-time.After(30 * time.Second):
		log.Warn("graceful shutdown timeout exceeded")
	}

	log.Info("arzbot stopped")
}
