package handlers

import (
	"barbershop/models"
	"barbershop/services/schedule"
)

// Document ids are not part of the stored body, so responses add them back.

type reservationView struct {
	ID string `json:"id"`
	models.Reservation
}

func reservationViews(rs []models.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, reservationView{ID: r.ID, Reservation: r})
	}
	return out
}

type shopItemView struct {
	ID string `json:"id"`
	models.ShopItem
}

func shopItemViews(items []models.ShopItem) []shopItemView {
	out := make([]shopItemView, 0, len(items))
	for _, it := range items {
		out = append(out, shopItemView{ID: it.ID, ShopItem: it})
	}
	return out
}

type orderView struct {
	ID string `json:"id"`
	models.Order
}

func orderViews(orders []models.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderView{ID: o.ID, Order: o})
	}
	return out
}

type workingDayView struct {
	Label  string `json:"label"`
	IsOpen bool   `json:"isOpen"`
}

func workingDayViews(days []models.WorkingDay) []workingDayView {
	out := make([]workingDayView, 0, len(days))
	for _, d := range days {
		out = append(out, workingDayView{Label: d.Label, IsOpen: d.IsOpen})
	}
	return out
}

// gridView is a schedule grid whose occupied cells carry reservation ids.
type gridView struct {
	Barber models.Provider                        `json:"barber"`
	Days   []string                               `json:"days"`
	Slots  []string                               `json:"slots"`
	Cells  map[string]map[string]*reservationView `json:"cells"`
}

func newGridView(g schedule.Grid) gridView {
	cells := make(map[string]map[string]*reservationView, len(g.Cells))
	for day, slots := range g.Cells {
		row := make(map[string]*reservationView, len(slots))
		for slot, r := range slots {
			if r == nil {
				row[slot] = nil
				continue
			}
			row[slot] = &reservationView{ID: r.ID, Reservation: *r}
		}
		cells[day] = row
	}
	return gridView{Barber: g.Provider, Days: g.Days, Slots: g.Slots, Cells: cells}
}

func gridViews(grids []schedule.Grid) []gridView {
	out := make([]gridView, 0, len(grids))
	for _, g := range grids {
		out = append(out, newGridView(g))
	}
	return out
}
