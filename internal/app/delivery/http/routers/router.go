package routers

import (
	"fmt"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/delivery/http/middlewares"
	"healthrecord-service/internal/app/services/core/appointments"
	"healthrecord-service/internal/app/services/core/health"
	"healthrecord-service/internal/app/services/core/prescriptions"
	"healthrecord-service/internal/app/services/core/profiles"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	profileController *profiles.ProfileController,
	appointmentController *appointments.AppointmentController,
	prescriptionController *prescriptions.PrescriptionController,
	healthController *health.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", healthController.Check)

	writeLimiter := middlewares.WriteRateLimit()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, writeLimiter, profileController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, writeLimiter, appointmentController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, writeLimiter, prescriptionController)
			})
		})
	})
}
