package handlers

import (
	"context"
	"net/http"

	"barbershop/models"
	"barbershop/services/booking"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the caller's booking wizard. Each call applies one
// transition and returns the resulting step, selection and options.
type BookingHandler struct {
	BookingService booking.BookingService
}

type wizardAction func(ctx context.Context, sess models.Session) (*booking.WizardView, error)

func (h *BookingHandler) respond(c *gin.Context, action wizardAction) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := action(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// selection binds {"value": "..."} and applies it with selectFn.
func (h *BookingHandler) selection(selectFn func(ctx context.Context, sess models.Session, value string) (*booking.WizardView, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Value string `json:"value" binding:"required"`
		}
		if !bindJSON(c, &req) {
			return
		}
		h.respond(c, func(ctx context.Context, sess models.Session) (*booking.WizardView, error) {
			return selectFn(ctx, sess, req.Value)
		})
	}
}

// GetWizardHandler handles GET /api/booking/wizard.
func (h *BookingHandler) GetWizardHandler(c *gin.Context) {
	h.respond(c, h.BookingService.GetWizard)
}

func (h *BookingHandler) SelectServiceHandler() gin.HandlerFunc {
	return h.selection(h.BookingService.SelectService)
}

func (h *BookingHandler) SelectProviderHandler() gin.HandlerFunc {
	return h.selection(h.BookingService.SelectProvider)
}

func (h *BookingHandler) SelectDayHandler() gin.HandlerFunc {
	return h.selection(h.BookingService.SelectDay)
}

func (h *BookingHandler) SelectTimeHandler() gin.HandlerFunc {
	return h.selection(h.BookingService.SelectTime)
}

func (h *BookingHandler) BackHandler(c *gin.Context) {
	h.respond(c, h.BookingService.Back)
}

func (h *BookingHandler) RestartHandler(c *gin.Context) {
	h.respond(c, h.BookingService.Restart)
}

// ConfirmHandler handles POST /api/booking/confirm. The wizard is back at
// its first step afterwards whether or not the reservation was stored, so a
// failure response still carries the reset wizard.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	res, view, err := h.BookingService.Confirm(c.Request.Context(), sess)
	if err != nil && view != nil {
		getLogger(c).Error("reservation not stored", zap.String("username", sess.ActiveUsername), zap.Error(err))
		c.JSON(utils.StatusFor(err), gin.H{
			"message": "Could not save your reservation. Please try again.",
			"kind":    string(utils.KindOf(err)),
			"wizard":  view,
		})
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("reservation confirmed", zap.String("id", res.ID), zap.String("username", sess.ActiveUsername))
	c.JSON(http.StatusCreated, gin.H{
		"reservation": reservationView{ID: res.ID, Reservation: *res},
		"wizard":      view,
	})
}
