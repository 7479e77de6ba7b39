package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riraku-service/internal/app/config"
	"riraku-service/internal/app/delivery/http/middlewares"
	"riraku-service/internal/app/delivery/http/routers"
	"riraku-service/internal/app/drivers/database"
	"riraku-service/internal/app/drivers/logger"
	"riraku-service/internal/app/drivers/messaging"
	"riraku-service/internal/app/services/core/availability"
	"riraku-service/internal/app/services/core/notifier"
	"riraku-service/internal/app/services/core/reservation"
	"riraku-service/internal/app/services/shared/events"
	"riraku-service/internal/app/services/shared/locker"
	"riraku-service/internal/app/services/shared/profiles"
	"riraku-service/internal/app/services/shared/redis"
	"riraku-service/internal/pkg/civiltime"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	clock := civiltime.System()

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Mongo
	profileRepository := profiles.NewProfileMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// RabbitMQ
	eventPublisher := events.NewReservationPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Availability
	availabilityClient := availability.NewAvailabilityClient(bootstrap.InternalConfig)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityClient,
		redisRepository,
		clock,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := availability.NewAvailabilityController(
		bootstrap.Logger,
		availabilityUsecase,
		clock,
		bootstrap.InternalConfig,
	)

	// Reservation
	conflictNotifier := notifier.NewConflictNotifier(clock, bootstrap.Logger)
	reservationClient := reservation.NewReservationClient(bootstrap.InternalConfig)
	reservationUsecase := reservation.NewReservationUsecase(
		availabilityUsecase,
		availabilityClient,
		reservationClient,
		profileRepository,
		eventPublisher,
		lockerService,
		conflictNotifier,
		clock,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reservationController := reservation.NewReservationController(bootstrap.Logger, reservationUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, availabilityController, reservationController)
}
