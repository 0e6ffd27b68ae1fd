package booking

import (
	"testing"
	"time"

	"barbershop/services/catalog"
	"barbershop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-04 is a Wednesday.
var wednesday10 = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.Local)

func TestNextOccurrence_SameDayPassedMovesAWeek(t *testing.T) {
	got, err := NextOccurrence(wednesday10, "Wednesday", "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 11, 9, 0, 0, 0, time.Local), got)
}

func TestNextOccurrence_SameDayLaterIsToday(t *testing.T) {
	got, err := NextOccurrence(wednesday10, "Wednesday", "15:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 4, 15, 30, 0, 0, time.Local), got)
}

func TestNextOccurrence_ExactlyNowIsNextWeek(t *testing.T) {
	got, err := NextOccurrence(wednesday10, "Wednesday", "10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 11, 10, 0, 0, 0, time.Local), got)
}

func TestNextOccurrence_WrapsAroundTheWeek(t *testing.T) {
	got, err := NextOccurrence(wednesday10, "Monday", "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 9, 9, 30, 0, 0, time.Local), got)
}

func TestNextOccurrence_CrossesMonthEnd(t *testing.T) {
	now := time.Date(2026, time.March, 30, 18, 0, 0, 0, time.Local) // Monday
	got, err := NextOccurrence(now, "Thursday", "10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 2, 10, 0, 0, 0, time.Local), got)
}

func TestNextOccurrence_AlwaysFutureAndOnWeekday(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	for h := 0; h < 24*7; h += 5 {
		now := start.Add(time.Duration(h)*time.Hour + 17*time.Minute)
		for _, day := range catalog.DayOrder {
			for _, slot := range catalog.HalfHourSlots() {
				got, err := NextOccurrence(now, day, slot)
				require.NoError(t, err)
				want, _ := catalog.Weekday(day)
				assert.Equal(t, want, got.Weekday())
				assert.True(t, got.After(now), "%s %s from %s", day, slot, now)
				assert.True(t, got.Sub(now) <= 7*24*time.Hour+time.Hour)
				assert.Equal(t, slot, got.Format("15:04"))
				assert.Zero(t, got.Second())

				again, _ := NextOccurrence(now, day, slot)
				assert.Equal(t, got, again)
			}
		}
	}
}

func TestNextOccurrence_Invalid(t *testing.T) {
	_, err := NextOccurrence(wednesday10, "Caturday", "09:00")
	assert.Equal(t, utils.KindScheduling, utils.KindOf(err))

	_, err = NextOccurrence(wednesday10, "Monday", "9am")
	assert.Equal(t, utils.KindScheduling, utils.KindOf(err))
}
