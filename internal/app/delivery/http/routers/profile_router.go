package routers

import (
	"healthrecord-service/internal/app/services/core/profiles"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, writeLimiter func(http.Handler) http.Handler, profileController *profiles.ProfileController) {
	router.With(writeLimiter).Post("/", profileController.SaveProfile)
}
