package reservationRepo

import (
	"context"
	"testing"
	"time"

	"barbershop/database/store"
	"barbershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, min int) models.WallClock {
	return models.NewWallClock(time.Date(2026, time.March, day, hour, min, 0, 0, time.Local))
}

func TestStoreReservationRepo_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreReservationRepo(store.NewMemoryStore())

	later := &models.Reservation{Username: "jdoe", Client: "Jane Doe", Service: "Skin Fade", Provider: "Fadi Salameh", DateTime: at(6, 14, 0)}
	sooner := &models.Reservation{Username: "jdoe", Client: "Jane Doe", Service: "Classic Cut", Provider: "Islam", DateTime: at(3, 9, 30)}
	other := &models.Reservation{Username: "bob", Client: "Bob", Service: "Beard Trim", Provider: "Islam", DateTime: at(4, 11, 0)}

	for _, r := range []*models.Reservation{later, sooner, other} {
		id, err := repo.Create(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, id, r.ID)
	}

	mine, err := repo.GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Classic Cut", mine[0].Service)
	assert.Equal(t, "Skin Fade", mine[1].Service)

	got, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Client)
	assert.True(t, other.DateTime.Equal(got.DateTime.Time))

	require.NoError(t, repo.Delete(ctx, other.ID))
	require.NoError(t, repo.Delete(ctx, other.ID))
	_, err = repo.GetByID(ctx, other.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDecodeAllSkipsMalformed(t *testing.T) {
	records := []store.Record{
		{ID: "ok", Data: store.Document{"client": "A", "dateTime": "2026-03-02T10:00:00"}},
		{ID: "bad", Data: store.Document{"client": "B", "dateTime": "not a date"}},
	}
	out := DecodeAll(records)
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].ID)
}

func TestStoreReservationRepo_Watch(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreReservationRepo(store.NewMemoryStore())

	seen := make(chan []models.Reservation, 16)
	unsubscribe, err := repo.Watch(ctx, func(rs []models.Reservation) { seen <- rs })
	require.NoError(t, err)
	defer unsubscribe()

	_, err = repo.Create(ctx, &models.Reservation{Username: "jdoe", Client: "Jane Doe", DateTime: at(2, 10, 0)})
	require.NoError(t, err)

	deadline := time.After(time.Second)
	for {
		select {
		case rs := <-seen:
			if len(rs) == 1 {
				assert.Equal(t, "Jane Doe", rs[0].Client)
				return
			}
		case <-deadline:
			t.Fatal("reservation never reached the watcher")
		}
	}
}

func TestDecodeAllOrdersSharedSlotByCreation(t *testing.T) {
	// ids sort opposite to creation so only createdAt can give this order
	records := []store.Record{
		{ID: "b-later", Data: store.Document{"client": "Ben", "dateTime": "2026-03-06T14:00:00", "createdAt": "2026-03-01T10:00:05Z"}},
		{ID: "z-earlier", Data: store.Document{"client": "Alice", "dateTime": "2026-03-06T14:00:00", "createdAt": "2026-03-01T10:00:01Z"}},
		{ID: "a-sooner", Data: store.Document{"client": "Carl", "dateTime": "2026-03-06T09:00:00", "createdAt": "2026-03-01T10:00:09Z"}},
	}
	out := DecodeAll(records)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"Carl", "Alice", "Ben"}, []string{out[0].Client, out[1].Client, out[2].Client})
}

func TestStoreReservationRepo_CreateStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreReservationRepo(store.NewMemoryStore())

	res := &models.Reservation{Username: "jdoe", Client: "Jane Doe", DateTime: at(6, 14, 0)}
	_, err := repo.Create(ctx, res)
	require.NoError(t, err)
	assert.False(t, res.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, res.CreatedAt.Equal(got.CreatedAt))
}
