package routers

import (
	"healthrecord-service/internal/app/services/core/prescriptions"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, writeLimiter func(http.Handler) http.Handler, prescriptionController *prescriptions.PrescriptionController) {
	router.Get("/", prescriptionController.FindAll)
	router.With(writeLimiter).Post("/", prescriptionController.Create)
}
