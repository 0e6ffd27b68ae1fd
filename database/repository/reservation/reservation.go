package reservationRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

// ReservationRepository defines methods for reservation data access.
// Reservations are never updated: cancellation deletes them.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// GetAll returns every reservation ordered by date.
	GetAll(ctx context.Context) ([]models.Reservation, error)
	// GetByUsername returns the customer's reservations ordered by date.
	GetByUsername(ctx context.Context, username string) ([]models.Reservation, error)
	Delete(ctx context.Context, id string) error
	// Watch calls fn with the full decoded collection now and after every change.
	Watch(ctx context.Context, fn func([]models.Reservation)) (func(), error)
}

type StoreReservationRepo struct {
	store store.Store
	now   func() time.Time
}

func NewStoreReservationRepo(s store.Store) ReservationRepository {
	return &StoreReservationRepo{store: s, now: time.Now}
}

// Create stamps CreatedAt when the caller left it empty.
func (r *StoreReservationRepo) Create(ctx context.Context, res *models.Reservation) (string, error) {
	if res.CreatedAt.IsZero() {
		res.CreatedAt = r.now().UTC()
	}
	doc, err := store.Encode(res)
	if err != nil {
		return "", err
	}
	id, err := r.store.Create(ctx, store.Reservations, doc)
	if err != nil {
		return "", err
	}
	res.ID = id
	return id, nil
}

func (r *StoreReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	doc, err := r.store.Get(ctx, store.Reservations, id)
	if err != nil {
		return nil, err
	}
	res, err := decode(id, doc)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *StoreReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	records, err := r.store.List(ctx, store.Reservations)
	if err != nil {
		return nil, err
	}
	return DecodeAll(records), nil
}

func (r *StoreReservationRepo) GetByUsername(ctx context.Context, username string) ([]models.Reservation, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByUsername(all, username), nil
}

func (r *StoreReservationRepo) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, store.Reservations, id)
}

func (r *StoreReservationRepo) Watch(ctx context.Context, fn func([]models.Reservation)) (func(), error) {
	return r.store.Subscribe(ctx, store.Reservations, func(records []store.Record) {
		fn(DecodeAll(records))
	})
}

// DecodeAll converts raw records, skipping (and logging) malformed documents,
// and sorts the result by date then creation time. Records that tie on both
// keep the store's order.
func DecodeAll(records []store.Record) []models.Reservation {
	out := make([]models.Reservation, 0, len(records))
	for _, rec := range records {
		res, err := decode(rec.ID, rec.Data)
		if err != nil {
			utils.GetLogger().Warn("skipping malformed reservation", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DateTime.Equal(out[j].DateTime.Time) {
			return out[i].DateTime.Before(out[j].DateTime.Time)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// FilterByUsername keeps reservations that belong to username.
func FilterByUsername(all []models.Reservation, username string) []models.Reservation {
	out := make([]models.Reservation, 0)
	for _, r := range all {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out
}

func decode(id string, doc store.Document) (models.Reservation, error) {
	var res models.Reservation
	if err := store.Decode(doc, &res); err != nil {
		return res, fmt.Errorf("failed to decode reservation %s: %w", id, err)
	}
	res.ID = id
	return res, nil
}
