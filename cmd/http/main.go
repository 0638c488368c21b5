package main

import (
	"context"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/delivery/http/middlewares"
	"healthrecord-service/internal/app/delivery/http/routers"
	"healthrecord-service/internal/app/drivers/database"
	"healthrecord-service/internal/app/drivers/logger"
	"healthrecord-service/internal/app/drivers/messaging"
	"healthrecord-service/internal/app/services/core/appointments"
	"healthrecord-service/internal/app/services/core/health"
	"healthrecord-service/internal/app/services/core/prescriptions"
	"healthrecord-service/internal/app/services/core/profiles"
	"healthrecord-service/internal/app/services/shared/events"
	"healthrecord-service/internal/app/services/shared/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.RecordCacheTTLInSeconds > 0 {
		bootstrap.Redis = database.NewRedisClient(driverConfig, zapLogger)
	}
	if internalConfig.App.RabbitMQRecordEventsQueue != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, zapLogger)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Record store listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	cacheTTL := time.Duration(bootstrap.InternalConfig.App.RecordCacheTTLInSeconds) * time.Second
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// Record events
	var eventPublisher contracts.RecordEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRecordEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQRecordEventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
		bootstrap.EventsStop = publisher.Close
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Profile
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, eventPublisher, bootstrap.Logger)
	profileController := profiles.NewProfileController(bootstrap.Logger, profileUsecase, requestTimeout)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, redisRepository, eventPublisher, cacheTTL, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	// Prescription
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionMongoRepository, redisRepository, eventPublisher, cacheTTL, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase, requestTimeout)

	// Health
	healthController := health.NewHealthController(bootstrap.Logger, health.NewStorageMongoPinger(bootstrap.MongoDB), requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		profileController,
		appointmentController,
		prescriptionController,
		healthController,
	)
	return nil
}
