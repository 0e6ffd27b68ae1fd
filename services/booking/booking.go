package booking

import (
	"context"
	"errors"

	reservationRepo "barbershop/database/repository/reservation"
	sessionRepo "barbershop/database/repository/session"
	"barbershop/database/store"
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"

	"go.uber.org/zap"
)

func wizardKey(username string) string {
	return sessionRepo.WizardPrefix + username
}

func (s *DefaultBookingService) load(ctx context.Context, sess models.Session) (*Wizard, error) {
	w := NewWizard()
	found, err := s.Sessions.Load(ctx, wizardKey(sess.ActiveUsername), w)
	if err != nil {
		return nil, storeFailure("load booking wizard", err)
	}
	if !found {
		return NewWizard(), nil
	}
	return w, nil
}

func (s *DefaultBookingService) save(ctx context.Context, sess models.Session, w *Wizard) error {
	if err := s.Sessions.Save(ctx, wizardKey(sess.ActiveUsername), w); err != nil {
		return storeFailure("save booking wizard", err)
	}
	return nil
}

func (s *DefaultBookingService) view(w *Wizard) *WizardView {
	return &WizardView{Step: w.Step, Selection: w.Selection, Options: OptionsFor(s.Catalog, w)}
}

// apply loads the wizard, runs one transition and saves it back.
func (s *DefaultBookingService) apply(ctx context.Context, sess models.Session, transition func(*Wizard) error) (*WizardView, error) {
	w, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := transition(w); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess, w); err != nil {
		return nil, err
	}
	return s.view(w), nil
}

func (s *DefaultBookingService) GetWizard(ctx context.Context, sess models.Session) (*WizardView, error) {
	w, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.view(w), nil
}

func (s *DefaultBookingService) SelectService(ctx context.Context, sess models.Session, serviceID string) (*WizardView, error) {
	svc, ok := s.Catalog.Service(serviceID)
	if !ok {
		return nil, utils.ValidationError("unknown service %q", serviceID)
	}
	return s.apply(ctx, sess, func(w *Wizard) error {
		w.SelectService(svc)
		return nil
	})
}

func (s *DefaultBookingService) SelectProvider(ctx context.Context, sess models.Session, providerID string) (*WizardView, error) {
	p, ok := s.Catalog.Provider(providerID)
	if !ok {
		return nil, utils.ValidationError("unknown barber %q", providerID)
	}
	return s.apply(ctx, sess, func(w *Wizard) error {
		return w.SelectProvider(p)
	})
}

func (s *DefaultBookingService) SelectDay(ctx context.Context, sess models.Session, day string) (*WizardView, error) {
	if _, ok := catalog.Weekday(day); !ok {
		return nil, utils.ValidationError("unknown day %q", day)
	}
	return s.apply(ctx, sess, func(w *Wizard) error {
		return w.SelectDay(day)
	})
}

func (s *DefaultBookingService) SelectTime(ctx context.Context, sess models.Session, t string) (*WizardView, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		if w.Step == StepTime && !contains(ValidTimes(s.Catalog, w.Selection), t) {
			return utils.ValidationError("%s is not available on %s", t, w.Selection.Day)
		}
		return w.SelectTime(t)
	})
}

func (s *DefaultBookingService) Back(ctx context.Context, sess models.Session) (*WizardView, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		w.Back()
		return nil
	})
}

func (s *DefaultBookingService) Restart(ctx context.Context, sess models.Session) (*WizardView, error) {
	return s.apply(ctx, sess, func(w *Wizard) error {
		w.Restart()
		return nil
	})
}

func (s *DefaultBookingService) Confirm(ctx context.Context, sess models.Session) (*models.Reservation, *WizardView, error) {
	logger := utils.GetLogger()
	w, err := s.load(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	if w.Step != StepSummary {
		return nil, nil, utils.ValidationError("nothing to confirm at the %s step", w.Step)
	}
	sel := w.Selection
	if !sel.Complete() {
		return nil, nil, utils.ValidationError("service, barber, day and time are all required")
	}

	at, err := NextOccurrence(s.Now(), sel.Day, sel.Time)
	if err != nil {
		return nil, nil, err
	}

	res := &models.Reservation{
		Username:   sess.ActiveUsername,
		Client:     sess.DisplayName(),
		Service:    sel.Service.Name,
		ProviderID: sel.Provider.ID,
		Provider:   sel.Provider.Name,
		DateTime:   models.NewWallClock(at),
	}
	_, createErr := s.Reservations.Create(ctx, res)

	// The selection is dropped whether or not the store accepted it.
	w.Restart()
	if err := s.save(ctx, sess, w); err != nil {
		logger.Warn("booking: failed to reset wizard", zap.String("username", sess.ActiveUsername), zap.Error(err))
	}

	if createErr != nil {
		logger.Error("booking: failed to create reservation", zap.String("username", sess.ActiveUsername), zap.Error(createErr))
		return nil, s.view(w), storeFailure("create reservation", createErr)
	}
	logger.Info("booking: reservation created",
		zap.String("id", res.ID),
		zap.String("username", res.Username),
		zap.String("barber", res.Provider),
		zap.Time("at", at))
	return res, s.view(w), nil
}

func (s *DefaultBookingService) MyReservations(ctx context.Context, sess models.Session) ([]models.Reservation, error) {
	list, err := s.Reservations.GetByUsername(ctx, sess.ActiveUsername)
	if err != nil {
		return nil, storeFailure("list reservations", err)
	}
	return list, nil
}

// WatchReservations hands fn the caller's reservations on every snapshot of
// the collection until ctx ends or the returned func is called.
func (s *DefaultBookingService) WatchReservations(ctx context.Context, sess models.Session, fn func([]models.Reservation)) (func(), error) {
	username := sess.ActiveUsername
	unsubscribe, err := s.Reservations.Watch(ctx, func(all []models.Reservation) {
		fn(reservationRepo.FilterByUsername(all, username))
	})
	if err != nil {
		return nil, storeFailure("watch reservations", err)
	}
	return unsubscribe, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, sess models.Session, reservationID string) error {
	res, err := s.Reservations.GetByID(ctx, reservationID)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFoundError("reservation not found")
	}
	if err != nil {
		return storeFailure("get reservation", err)
	}
	if !sess.IsAdmin && res.Username != sess.ActiveUsername {
		return utils.AuthError("you can only cancel your own reservations")
	}
	if err := s.Reservations.Delete(ctx, reservationID); err != nil {
		return storeFailure("cancel reservation", err)
	}
	utils.GetLogger().Info("booking: reservation cancelled", zap.String("id", reservationID), zap.String("by", sess.ActiveUsername))
	return nil
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
