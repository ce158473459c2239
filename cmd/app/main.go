package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/bootstrap"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/seatmap"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/Domenick1991/flightbooking/internal/service/users"
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
	logger.Log.Info("storage ready", "driver", cfg.Storage.Driver)

	// Events are optional; without brokers the services skip publishing.
	var bookingProducer booking.Producer
	var userProducer users.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logger.Log.Warn("kafka unavailable, events may be lost", "error", err)
		}
		bookingProducer = producer
		userProducer = producer
	}

	flightRepo := repository.NewFlightRepository()
	bookingRepo := repository.NewBookingLedger(backend.Store, cfg.Storage.BookingsKey)
	userRepo := repository.NewUserLedger(backend.Store, cfg.Storage.UsersKey)

	services := bootstrap.Services{
		Flights: flights.NewFlightService(flightRepo),
		Bookings: booking.NewBookingService(
			bookingRepo,
			flightRepo,
			bookingProducer,
			cfg.Kafka.BookingTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithLayout(seatmap.NewLayout(cfg.SeatMap.Rows, cfg.SeatMap.PremiumRowFirst, cfg.SeatMap.PremiumRowLast)),
		),
		Users: users.NewUserService(userRepo, userProducer, cfg.Kafka.NotificationsTopic),
	}

	var checks []bootstrap.Pinger
	if backend.Ping != nil {
		checks = append(checks, bootstrap.PingFunc(backend.Ping))
	}

	if err := bootstrap.Run(ctx, cfg, services, checks...); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
