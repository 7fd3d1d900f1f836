package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mammo-regions/config"
	telegram "mammo-regions/internal/api"
	app "mammo-regions/internal/application"
	"mammo-regions/internal/container"
	"mammo-regions/internal/infrastructure/storage"
	"mammo-regions/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	// Присланные снимки произвольного размера: ось Y переворачиваем по высоте самого снимка
	params := cfg.Pipeline
	params.ImageHeight = 0

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения; файлы на диск бот не пишет
	appContainer, err := container.New(userRepo, container.Options{
		Backend: cfg.Backend,
		Params:  params,
		Layout:  app.Layout{},
		Log:     logg,
	})
	if err != nil {
		logg.WithError(err).Fatal("build container")
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logg)
	if err != nil {
		logg.WithError(err).Fatal("create bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		logg.WithError(err).Fatal("bot stopped")
	}
}
