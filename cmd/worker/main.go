package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/email"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/storage"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer backend.Close()

	bookingRepo := repository.NewBookingLedger(backend.Store, cfg.Storage.BookingsKey)

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
		defer consumer.Close()

		sender := email.NewSender(logger.Log)
		go func() {
			if err := consumer.Consume(ctx, sender.Send); err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Error("consumer stopped", "error", err)
			}
		}()
		logger.Log.Info("consuming notifications", "topic", cfg.Kafka.NotificationsTopic, "group", cfg.Kafka.GroupID)
	} else {
		logger.Log.Warn("no kafka brokers configured, notifications disabled")
	}

	statsTicker := time.NewTicker(time.Duration(cfg.Worker.StatsIntervalMinutes) * time.Minute)
	defer statsTicker.Stop()

	for {
		select {
		case <-statsTicker.C:
			stats := booking.Summarize(bookingRepo.ListAll(ctx), time.Now())
			logger.Log.Info("booking ledger stats",
				"total", stats.Total,
				"seats", stats.SeatsBooked,
				"flights", stats.Flights,
				"confirmed", stats.ByStatus[domain.BookingStatusConfirmed],
				"completed", stats.ByStatus[domain.BookingStatusCompleted],
				"cancelled", stats.ByStatus[domain.BookingStatusCancelled],
			)
		case <-ctx.Done():
			logger.Log.Info("worker shutting down")
			return
		}
	}
}
