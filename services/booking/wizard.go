package booking

import (
	"barbershop/models"
	"barbershop/services/catalog"
	"barbershop/utils"
)

// Step is a wizard state.
type Step string

const (
	StepService  Step = "service"
	StepProvider Step = "provider"
	StepDay      Step = "day"
	StepTime     Step = "time"
	StepSummary  Step = "summary"
)

var stepOrder = []Step{StepService, StepProvider, StepDay, StepTime, StepSummary}

func (s Step) index() int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return 0
}

// Wizard narrows service -> provider -> day -> time down to one slot.
// It is serialized into the session cache between requests.
type Wizard struct {
	Step      Step                    `json:"step"`
	Selection models.BookingSelection `json:"selection"`
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepService}
}

// SelectService is accepted from any step and resets the selection.
func (w *Wizard) SelectService(s models.Service) {
	w.Selection = models.BookingSelection{Service: &s}
	w.Step = StepProvider
}

// SelectProvider does not check that p performs the selected service; the
// option list offered to the customer is the filter.
func (w *Wizard) SelectProvider(p models.Provider) error {
	if err := w.expect(StepProvider); err != nil {
		return err
	}
	w.Selection.Provider = &p
	w.Selection.Day = ""
	w.Selection.Time = ""
	w.Step = StepDay
	return nil
}

// SelectDay accepts a day with no slots; the time step then has no options.
func (w *Wizard) SelectDay(day string) error {
	if err := w.expect(StepDay); err != nil {
		return err
	}
	w.Selection.Day = day
	w.Selection.Time = ""
	w.Step = StepTime
	return nil
}

func (w *Wizard) SelectTime(t string) error {
	if err := w.expect(StepTime); err != nil {
		return err
	}
	w.Selection.Time = t
	w.Step = StepSummary
	return nil
}

// Back returns to the previous step, clearing the field chosen at the step
// being left and everything after it.
func (w *Wizard) Back() {
	i := w.Step.index()
	if i == 0 {
		return
	}
	w.clearFrom(w.Step)
	w.Step = stepOrder[i-1]
}

func (w *Wizard) Restart() {
	w.Step = StepService
	w.Selection = models.BookingSelection{}
}

func (w *Wizard) clearFrom(step Step) {
	switch step {
	case StepService:
		w.Selection.Service = nil
		fallthrough
	case StepProvider:
		w.Selection.Provider = nil
		fallthrough
	case StepDay:
		w.Selection.Day = ""
		fallthrough
	case StepTime:
		w.Selection.Time = ""
	}
}

func (w *Wizard) expect(step Step) error {
	if w.Step != step {
		return utils.ValidationError("cannot choose a %s while at the %s step", step, w.Step)
	}
	return nil
}

// Options are the choices offered at the current step.
type Options struct {
	Services  []models.Service  `json:"services,omitempty"`
	Providers []models.Provider `json:"providers,omitempty"`
	Days      []string          `json:"days,omitempty"`
	Times     []string          `json:"times,omitempty"`
}

// ValidProviders lists providers performing the selected service, or every
// provider when none does.
func ValidProviders(cat *catalog.Catalog, sel models.BookingSelection) []models.Provider {
	all := cat.Providers()
	if sel.Service == nil {
		return all
	}
	matching := make([]models.Provider, 0, len(all))
	for _, p := range all {
		if p.Performs(sel.Service.ID) {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		return all
	}
	return matching
}

// ValidDays lists, Monday first, the weekdays the selected provider works.
func ValidDays(cat *catalog.Catalog, sel models.BookingSelection) []string {
	if sel.Provider == nil {
		return nil
	}
	days := make([]string, 0, len(catalog.DayOrder))
	for _, d := range catalog.DayOrder {
		if len(cat.Slots(sel.Provider.ID, d)) > 0 {
			days = append(days, d)
		}
	}
	return days
}

// ValidTimes is exactly the provider's slot list for the selected day.
// Slots already reserved by other customers are not removed.
func ValidTimes(cat *catalog.Catalog, sel models.BookingSelection) []string {
	if sel.Provider == nil || sel.Day == "" {
		return nil
	}
	return cat.Slots(sel.Provider.ID, sel.Day)
}

// OptionsFor returns the choices for the wizard's current step.
func OptionsFor(cat *catalog.Catalog, w *Wizard) Options {
	switch w.Step {
	case StepService:
		return Options{Services: cat.Services()}
	case StepProvider:
		return Options{Providers: ValidProviders(cat, w.Selection)}
	case StepDay:
		return Options{Days: ValidDays(cat, w.Selection)}
	case StepTime:
		return Options{Times: ValidTimes(cat, w.Selection)}
	default:
		return Options{}
	}
}
