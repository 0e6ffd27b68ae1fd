package handlers

import (
	"context"
	"net/http"

	"barbershop/models"
	"barbershop/services/booking"
	"barbershop/services/schedule"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler lists, cancels and streams reservations.
type ReservationHandler struct {
	BookingService booking.BookingService
	Board          *schedule.Board
}

// ListHandler handles GET /api/reservations: the caller's own reservations.
func (h *ReservationHandler) ListHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.BookingService.MyReservations(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationViews(list))
}

// CancelHandler handles DELETE /api/reservations/:id and
// DELETE /api/admin/reservations/:id.
func (h *ReservationHandler) CancelHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.BookingService.Cancel(c.Request.Context(), sess, id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled", "id": id})
}

// StreamHandler handles GET /api/reservations/stream.
func (h *ReservationHandler) StreamHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	streamEvents(c, "reservations", func(ctx context.Context, push func(interface{})) (func(), error) {
		return h.BookingService.WatchReservations(ctx, sess, func(rs []models.Reservation) {
			push(reservationViews(rs))
		})
	})
}

// ScheduleHandler handles GET /api/admin/schedule. With ?barber=<id> it
// returns that barber's grid, otherwise every barber's.
func (h *ReservationHandler) ScheduleHandler(c *gin.Context) {
	if id := c.Query("barber"); id != "" {
		grid, err := h.Board.Grid(id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newGridView(grid))
		return
	}
	c.JSON(http.StatusOK, gridViews(h.Board.Grids()))
}

// ScheduleStreamHandler handles GET /api/admin/schedule/stream.
func (h *ReservationHandler) ScheduleStreamHandler(c *gin.Context) {
	streamEvents(c, "schedule", func(ctx context.Context, push func(interface{})) (func(), error) {
		return h.Board.Watch(ctx, func(grids []schedule.Grid) {
			push(gridViews(grids))
		})
	})
}
