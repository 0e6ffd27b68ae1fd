package booking

import (
	"testing"

	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkTo(t *testing.T, step Step) *Wizard {
	t.Helper()
	cat := catalog.Default()
	w := NewWizard()
	if step == StepService {
		return w
	}
	svc, _ := cat.Service("classic")
	w.SelectService(svc)
	if step == StepProvider {
		return w
	}
	p, _ := cat.Provider("fadi")
	require.NoError(t, w.SelectProvider(p))
	if step == StepDay {
		return w
	}
	require.NoError(t, w.SelectDay("Monday"))
	if step == StepTime {
		return w
	}
	require.NoError(t, w.SelectTime("09:30"))
	return w
}

func TestWizard_HappyPath(t *testing.T) {
	w := walkTo(t, StepSummary)
	assert.Equal(t, StepSummary, w.Step)
	assert.True(t, w.Selection.Complete())
	assert.Equal(t, "Classic Cut", w.Selection.Service.Name)
	assert.Equal(t, "Fadi Salameh", w.Selection.Provider.Name)
	assert.Equal(t, "Monday", w.Selection.Day)
	assert.Equal(t, "09:30", w.Selection.Time)
}

func TestWizard_BackFromTimeKeepsDay(t *testing.T) {
	w := walkTo(t, StepTime)
	w.Back()
	assert.Equal(t, StepDay, w.Step)
	assert.Empty(t, w.Selection.Time)
	assert.Equal(t, "Monday", w.Selection.Day)
}

func TestWizard_BackClearsLeftStepAndLater(t *testing.T) {
	cases := []struct {
		from     Step
		to       Step
		provider bool
		day      bool
		time     bool
	}{
		{from: StepSummary, to: StepTime, provider: true, day: true, time: true},
		{from: StepTime, to: StepDay, provider: true, day: true},
		{from: StepDay, to: StepProvider, provider: true},
		{from: StepProvider, to: StepService},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			w := walkTo(t, tc.from)
			w.Back()
			assert.Equal(t, tc.to, w.Step)
			assert.Equal(t, tc.provider, w.Selection.Provider != nil)
			assert.Equal(t, tc.day, w.Selection.Day != "")
			assert.Equal(t, tc.time, w.Selection.Time != "")
		})
	}
}

func TestWizard_BackAtServiceIsNoop(t *testing.T) {
	w := NewWizard()
	w.Back()
	assert.Equal(t, StepService, w.Step)
	assert.True(t, w.Selection.Empty())
}

func TestWizard_RestartFromAnyStep(t *testing.T) {
	for _, step := range stepOrder {
		t.Run(string(step), func(t *testing.T) {
			w := walkTo(t, step)
			w.Restart()
			assert.Equal(t, StepService, w.Step)
			assert.True(t, w.Selection.Empty())
		})
	}
}

func TestWizard_SelectServiceResetsFromAnyStep(t *testing.T) {
	w := walkTo(t, StepSummary)
	beard, _ := catalog.Default().Service("beard")
	w.SelectService(beard)
	assert.Equal(t, StepProvider, w.Step)
	assert.Equal(t, models.BookingSelection{Service: &beard}, w.Selection)
}

func TestWizard_OutOfStepSelectionsRejected(t *testing.T) {
	w := walkTo(t, StepProvider)
	err := w.SelectDay("Monday")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Equal(t, StepProvider, w.Step)

	err = w.SelectTime("09:00")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestWizard_EmptyDayIsSelectable(t *testing.T) {
	cat := catalog.Default()
	w := walkTo(t, StepDay)
	require.NoError(t, w.SelectDay("Tuesday"))
	assert.Equal(t, StepTime, w.Step)
	assert.Empty(t, ValidTimes(cat, w.Selection))
}

func TestValidProviders(t *testing.T) {
	cat := catalog.Default()

	fade, _ := cat.Service("fade")
	providers := ValidProviders(cat, models.BookingSelection{Service: &fade})
	require.Len(t, providers, 1)
	assert.Equal(t, "fadi", providers[0].ID)

	unknown := models.Service{ID: "shave", Name: "Hot Shave"}
	assert.Len(t, ValidProviders(cat, models.BookingSelection{Service: &unknown}), 2)
}

func TestValidDaysMondayFirst(t *testing.T) {
	cat := catalog.Default()
	islam, _ := cat.Provider("islam")
	days := ValidDays(cat, models.BookingSelection{Provider: &islam})
	assert.Equal(t, []string{"Tuesday", "Thursday", "Saturday", "Sunday"}, days)
}

func TestValidTimes_FadiMonday(t *testing.T) {
	avail := models.AvailabilityTable{"fadi": {"Monday": {"09:00", "09:30"}}}
	cat, err := catalog.New(catalog.Default().Services(), catalog.Default().Providers(), avail)
	require.NoError(t, err)

	w := NewWizard()
	classic, _ := cat.Service("classic")
	w.SelectService(classic)
	fadi, _ := cat.Provider("fadi")
	require.NoError(t, w.SelectProvider(fadi))
	require.NoError(t, w.SelectDay("Monday"))

	assert.Equal(t, []string{"09:00", "09:30"}, ValidTimes(cat, w.Selection))
	assert.Equal(t, []string{"09:00", "09:30"}, OptionsFor(cat, w).Times)
}
