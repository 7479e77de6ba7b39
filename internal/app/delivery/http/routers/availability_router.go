package routers

import (
	"riraku-service/internal/app/services/core/availability"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, c *availability.AvailabilityController) {
	router.Get("/{staffID}/availability", c.WeekView)
}
