// Package schedule reshapes the flat reservation collection into the admin's
// barber x weekday x half-hour grid.
package schedule

import (
	"strings"
	"time"

	"barbershop/models"
	"barbershop/services/catalog"
)

// Grid maps weekday -> "HH:MM" -> reservation. Every cell of the business
// week is present; empty cells hold nil.
type Grid struct {
	Provider models.Provider                           `json:"barber"`
	Days     []string                                  `json:"days"`
	Slots    []string                                  `json:"slots"`
	Cells    map[string]map[string]*models.Reservation `json:"cells"`
}

// Cell returns the reservation shown at (day, slot).
func (g Grid) Cell(day, slot string) *models.Reservation {
	return g.Cells[day][slot]
}

// Project places each reservation of provider at the cell keyed by its
// weekday and time floored to the half hour. When two reservations land in
// the same cell the later one in the input wins.
func Project(reservations []models.Reservation, provider models.Provider) Grid {
	g := Grid{
		Provider: provider,
		Days:     append([]string(nil), catalog.DayOrder...),
		Slots:    catalog.HalfHourSlots(),
		Cells:    make(map[string]map[string]*models.Reservation, len(catalog.DayOrder)),
	}
	for _, d := range g.Days {
		row := make(map[string]*models.Reservation, len(g.Slots))
		for _, s := range g.Slots {
			row[s] = nil
		}
		g.Cells[d] = row
	}

	for i := range reservations {
		r := reservations[i]
		if !belongsTo(r, provider) || r.DateTime.IsZero() {
			continue
		}
		day := r.DateTime.Weekday().String()
		slot := floorToSlot(r.DateTime.Time)
		row := g.Cells[day]
		if _, onGrid := row[slot]; !onGrid {
			continue
		}
		row[slot] = &r
	}
	return g
}

func belongsTo(r models.Reservation, p models.Provider) bool {
	if r.ProviderID != "" {
		return r.ProviderID == p.ID
	}
	return strings.EqualFold(r.Provider, p.Name)
}

func floorToSlot(t time.Time) string {
	m := t.Minute() - t.Minute()%catalog.SlotMinutes
	return time.Date(0, 1, 1, t.Hour(), m, 0, 0, time.UTC).Format("15:04")
}
