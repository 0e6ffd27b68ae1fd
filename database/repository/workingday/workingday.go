package workingDayRepo

import (
	"context"
	"fmt"

	"barbershop/database/store"
	"barbershop/models"
)

// WorkingDayRepository stores the admin "are we open" toggles keyed by label.
type WorkingDayRepository interface {
	GetAll(ctx context.Context) ([]models.WorkingDay, error)
	Get(ctx context.Context, label string) (*models.WorkingDay, error)
	// Set merges isOpen into the day, creating it when absent.
	Set(ctx context.Context, label string, isOpen bool) error
	Delete(ctx context.Context, label string) error
}

type StoreWorkingDayRepo struct {
	store store.Store
}

func NewStoreWorkingDayRepo(s store.Store) WorkingDayRepository {
	return &StoreWorkingDayRepo{store: s}
}

func (r *StoreWorkingDayRepo) GetAll(ctx context.Context) ([]models.WorkingDay, error) {
	records, err := r.store.List(ctx, store.WorkingDays)
	if err != nil {
		return nil, err
	}
	days := make([]models.WorkingDay, 0, len(records))
	for _, rec := range records {
		var day models.WorkingDay
		if err := store.Decode(rec.Data, &day); err != nil {
			return nil, fmt.Errorf("failed to decode working day %s: %w", rec.ID, err)
		}
		day.Label = rec.ID
		days = append(days, day)
	}
	return days, nil
}

func (r *StoreWorkingDayRepo) Get(ctx context.Context, label string) (*models.WorkingDay, error) {
	doc, err := r.store.Get(ctx, store.WorkingDays, label)
	if err != nil {
		return nil, err
	}
	var day models.WorkingDay
	if err := store.Decode(doc, &day); err != nil {
		return nil, fmt.Errorf("failed to decode working day %s: %w", label, err)
	}
	day.Label = label
	return &day, nil
}

func (r *StoreWorkingDayRepo) Set(ctx context.Context, label string, isOpen bool) error {
	return r.store.Set(ctx, store.WorkingDays, label, store.Document{"isOpen": isOpen})
}

func (r *StoreWorkingDayRepo) Delete(ctx context.Context, label string) error {
	return r.store.Remove(ctx, store.WorkingDays, label)
}
