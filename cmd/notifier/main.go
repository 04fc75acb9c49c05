package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sazonapp/pos_backend/internal/messaging/rabbitmq"
	"github.com/sazonapp/pos_backend/internal/notifications"
	"github.com/sazonapp/pos_backend/internal/platform/config"
)

// The notifier is a standalone worker: it drains the notification queue and
// delivers WhatsApp messages, so a slow gateway never blocks order flow.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RabbitMQURL == "" {
		logger.Error("RABBITMQ_URL is required for the notifier worker")
		os.Exit(1)
	}

	sender := notifications.NewWhatsAppSender(cfg.WhatsAppAPIURL, cfg.WhatsAppAPIKey)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Notifier starting", slog.String("queue", cfg.NotificationQueue))
	if err := rabbitmq.Consume(ctx, cfg.RabbitMQURL, cfg.NotificationQueue, sender.Send); err != nil && err != context.Canceled {
		logger.Error("Notifier stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Notifier shut down cleanly.")
}
