// Package workingday manages the admin's "are we open" toggles. These are
// independent of the barbers' availability table.
package workingday

import (
	"context"
	"errors"
	"strings"

	"barbershop/database/repository"
	"barbershop/database/store"
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"
)

type WorkingDayService interface {
	// List returns Monday..Sunday (absent days closed) followed by any extra labels.
	List(ctx context.Context) ([]models.WorkingDay, error)
	Add(ctx context.Context, sess models.Session, label string) (*models.WorkingDay, error)
	Toggle(ctx context.Context, sess models.Session, label string) (*models.WorkingDay, error)
	Remove(ctx context.Context, sess models.Session, label string) error
}

type DefaultWorkingDayService struct {
	Repo repository.WorkingDayRepository
}

func NewWorkingDayService(repo repository.WorkingDayRepository) *DefaultWorkingDayService {
	return &DefaultWorkingDayService{Repo: repo}
}

func storeFailure(op string, err error) error {
	if utils.KindOf(err) != "" {
		return err
	}
	return utils.StoreError(op, err)
}

func requireAdmin(sess models.Session) error {
	if !sess.IsAdmin {
		return utils.AuthError("administrator access required")
	}
	return nil
}

func (s *DefaultWorkingDayService) List(ctx context.Context) ([]models.WorkingDay, error) {
	stored, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, storeFailure("list working days", err)
	}
	byLabel := make(map[string]models.WorkingDay, len(stored))
	for _, d := range stored {
		byLabel[d.Label] = d
	}

	out := make([]models.WorkingDay, 0, len(catalog.DayOrder)+len(stored))
	for _, label := range catalog.DayOrder {
		day, ok := byLabel[label]
		if !ok {
			day = models.WorkingDay{Label: label}
		}
		out = append(out, day)
		delete(byLabel, label)
	}
	for _, d := range stored {
		if _, extra := byLabel[d.Label]; extra {
			out = append(out, d)
		}
	}
	return out, nil
}

// Add marks label open, creating it when needed.
func (s *DefaultWorkingDayService) Add(ctx context.Context, sess models.Session, label string) (*models.WorkingDay, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, utils.ValidationError("day label is required")
	}
	if err := s.Repo.Set(ctx, label, true); err != nil {
		return nil, storeFailure("add working day", err)
	}
	return &models.WorkingDay{Label: label, IsOpen: true}, nil
}

// Toggle flips isOpen; a day never stored counts as closed.
func (s *DefaultWorkingDayService) Toggle(ctx context.Context, sess models.Session, label string) (*models.WorkingDay, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	current, err := s.Repo.Get(ctx, label)
	switch {
	case errors.Is(err, store.ErrNotFound):
		current = &models.WorkingDay{Label: label}
	case err != nil:
		return nil, storeFailure("load working day", err)
	}
	next := !current.IsOpen
	if err := s.Repo.Set(ctx, label, next); err != nil {
		return nil, storeFailure("toggle working day", err)
	}
	return &models.WorkingDay{Label: label, IsOpen: next}, nil
}

func (s *DefaultWorkingDayService) Remove(ctx context.Context, sess models.Session, label string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, label); err != nil {
		return storeFailure("remove working day", err)
	}
	return nil
}
