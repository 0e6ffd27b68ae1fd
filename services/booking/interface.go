package booking

import (
	"context"
	"time"

	"barbershop/database/repository"
	"barbershop/models"
	"barbershop/services/catalog"
)

// BookingService drives a customer's wizard and owns their reservations.
type BookingService interface {
	GetWizard(ctx context.Context, sess models.Session) (*WizardView, error)
	SelectService(ctx context.Context, sess models.Session, serviceID string) (*WizardView, error)
	SelectProvider(ctx context.Context, sess models.Session, providerID string) (*WizardView, error)
	SelectDay(ctx context.Context, sess models.Session, day string) (*WizardView, error)
	SelectTime(ctx context.Context, sess models.Session, t string) (*WizardView, error)
	Back(ctx context.Context, sess models.Session) (*WizardView, error)
	Restart(ctx context.Context, sess models.Session) (*WizardView, error)
	// Confirm creates the reservation and resets the wizard. The wizard is
	// reset even when the store rejects the reservation.
	Confirm(ctx context.Context, sess models.Session) (*models.Reservation, *WizardView, error)

	MyReservations(ctx context.Context, sess models.Session) ([]models.Reservation, error)
	WatchReservations(ctx context.Context, sess models.Session, fn func([]models.Reservation)) (func(), error)
	// Cancel deletes a reservation owned by the caller; admins may cancel any.
	Cancel(ctx context.Context, sess models.Session, reservationID string) error
}

// WizardView is the wizard state plus the options valid at its step.
type WizardView struct {
	Step      Step                    `json:"step"`
	Selection models.BookingSelection `json:"selection"`
	Options   Options                 `json:"options"`
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog      *catalog.Catalog
	Reservations repository.ReservationRepository
	Sessions     repository.SessionStore
	Now          func() time.Time
}

func NewBookingService(cat *catalog.Catalog, reservations repository.ReservationRepository, sessions repository.SessionStore) *DefaultBookingService {
	return &DefaultBookingService{
		Catalog:      cat,
		Reservations: reservations,
		Sessions:     sessions,
		Now:          time.Now,
	}
}
