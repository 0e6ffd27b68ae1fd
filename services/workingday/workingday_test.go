package workingday

import (
	"context"
	"testing"

	workingDayRepo "barbershop/database/repository/workingday"
	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.Session{ActiveUsername: "admin", IsAdmin: true}

func labels(days []models.WorkingDay) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Label)
	}
	return out
}

func TestWorkingDays(t *testing.T) {
	ctx := context.Background()
	s := NewWorkingDayService(workingDayRepo.NewStoreWorkingDayRepo(store.NewMemoryStore()))

	days, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}, labels(days))
	for _, d := range days {
		assert.False(t, d.IsOpen)
	}

	_, err = s.Add(ctx, admin, "Holiday Monday")
	require.NoError(t, err)
	_, err = s.Add(ctx, admin, "Friday")
	require.NoError(t, err)

	toggled, err := s.Toggle(ctx, admin, "Friday")
	require.NoError(t, err)
	assert.False(t, toggled.IsOpen)
	toggled, err = s.Toggle(ctx, admin, "Sunday")
	require.NoError(t, err)
	assert.True(t, toggled.IsOpen)

	days, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 8)
	assert.Equal(t, "Holiday Monday", days[7].Label)
	assert.True(t, days[7].IsOpen)
	assert.False(t, days[4].IsOpen)
	assert.True(t, days[6].IsOpen)

	require.NoError(t, s.Remove(ctx, admin, "Holiday Monday"))
	require.NoError(t, s.Remove(ctx, admin, "Holiday Monday"))
	days, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 7)
}

func TestWorkingDays_AdminOnly(t *testing.T) {
	ctx := context.Background()
	s := NewWorkingDayService(workingDayRepo.NewStoreWorkingDayRepo(store.NewMemoryStore()))
	customer := models.Session{ActiveUsername: "jdoe"}

	_, err := s.Add(ctx, customer, "Monday")
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
	_, err = s.Toggle(ctx, customer, "Monday")
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
	assert.Equal(t, utils.KindAuth, utils.KindOf(s.Remove(ctx, customer, "Monday")))

	_, err = s.Add(ctx, admin, " ")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
