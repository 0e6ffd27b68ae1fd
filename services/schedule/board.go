package schedule

import (
	"context"
	"sync"

	"barbershop/database/repository"
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"

	"go.uber.org/zap"
)

// Board keeps the latest reservations snapshot pushed by the store so the
// admin grid never has to re-read the collection.
type Board struct {
	catalog      *catalog.Catalog
	reservations repository.ReservationRepository

	mu          sync.RWMutex
	snapshot    []models.Reservation
	unsubscribe func()
}

func NewBoard(cat *catalog.Catalog, reservations repository.ReservationRepository) *Board {
	return &Board{catalog: cat, reservations: reservations}
}

// Start subscribes to the reservations collection until ctx ends or Stop is called.
func (b *Board) Start(ctx context.Context) error {
	unsubscribe, err := b.reservations.Watch(ctx, b.update)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.unsubscribe = unsubscribe
	b.mu.Unlock()
	utils.GetLogger().Info("schedule: board subscribed to reservations")
	return nil
}

func (b *Board) Stop() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (b *Board) update(reservations []models.Reservation) {
	b.mu.Lock()
	b.snapshot = reservations
	b.mu.Unlock()
	utils.GetLogger().Debug("schedule: snapshot received", zap.Int("reservations", len(reservations)))
}

// Reservations returns the latest snapshot.
func (b *Board) Reservations() []models.Reservation {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Reservation(nil), b.snapshot...)
}

// Grid projects the latest snapshot for one barber.
func (b *Board) Grid(providerID string) (Grid, error) {
	p, ok := b.catalog.Provider(providerID)
	if !ok {
		return Grid{}, utils.NotFoundError("unknown barber %q", providerID)
	}
	return Project(b.Reservations(), p), nil
}

// Grids projects the latest snapshot for every barber.
func (b *Board) Grids() []Grid {
	return b.project(b.Reservations())
}

// Watch opens a separate subscription and hands fn a fresh projection for
// every barber on each snapshot. It ends with ctx or the returned func.
func (b *Board) Watch(ctx context.Context, fn func([]Grid)) (func(), error) {
	return b.reservations.Watch(ctx, func(reservations []models.Reservation) {
		fn(b.project(reservations))
	})
}

func (b *Board) project(reservations []models.Reservation) []Grid {
	providers := b.catalog.Providers()
	grids := make([]Grid, 0, len(providers))
	for _, p := range providers {
		grids = append(grids, Project(reservations, p))
	}
	return grids
}
