package routers

import (
	"time"

	"riraku-service/internal/app/delivery/http/middlewares"
	"riraku-service/internal/app/services/core/reservation"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, c *reservation.ReservationController) {
	// Writes get a stricter limiter than the global per-IP one.
	submitLimiter := middlewares.NewRateLimiter(3, time.Second, 30*time.Second)

	router.With(submitLimiter.Limit).Post("/{staffID}/reservations", c.CreateReservation)
	router.Get("/{staffID}/reservations/summary", c.Summary)
}
