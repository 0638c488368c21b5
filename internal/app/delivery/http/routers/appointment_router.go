package routers

import (
	"healthrecord-service/internal/app/services/core/appointments"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, writeLimiter func(http.Handler) http.Handler, appointmentController *appointments.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.With(writeLimiter).Post("/", appointmentController.Create)
}
