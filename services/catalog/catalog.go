// Package catalog holds the build-time reference data: services, providers
// and the weekly availability table.
package catalog

import (
	"fmt"
	"time"

	"barbershop/models"
)

// SlotMinutes is the granularity of every bookable time of day.
const SlotMinutes = 30

// DayOrder is the display order of weekdays (week starts on Monday).
var DayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var dayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// Weekday maps a weekday name onto time.Weekday.
func Weekday(name string) (time.Weekday, bool) {
	d, ok := dayIndex[name]
	return d, ok
}

// HalfHourSlots returns every slot from 09:00 through 18:30.
func HalfHourSlots() []string {
	slots := make([]string, 0, 20)
	for m := 9 * 60; m <= 18*60+30; m += SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// Catalog is the immutable reference data. Accessors return copies.
type Catalog struct {
	services     []models.Service
	providers    []models.Provider
	availability models.AvailabilityTable
}

// New validates the availability table against the slot grid.
func New(services []models.Service, providers []models.Provider, availability models.AvailabilityTable) (*Catalog, error) {
	for providerID, week := range availability {
		for day, times := range week {
			if _, ok := dayIndex[day]; !ok {
				return nil, fmt.Errorf("provider %s: unknown weekday %q", providerID, day)
			}
			seen := make(map[string]bool, len(times))
			for _, t := range times {
				if _, err := ParseTimeOfDay(t); err != nil {
					return nil, fmt.Errorf("provider %s %s: %w", providerID, day, err)
				}
				if seen[t] {
					return nil, fmt.Errorf("provider %s %s: duplicate slot %s", providerID, day, t)
				}
				seen[t] = true
			}
		}
	}
	return &Catalog{services: services, providers: providers, availability: availability}, nil
}

// Default returns the shop's built-in catalog.
func Default() *Catalog {
	c, err := New(defaultServices, defaultProviders, defaultAvailability)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Services() []models.Service {
	return append([]models.Service(nil), c.services...)
}

func (c *Catalog) Providers() []models.Provider {
	out := make([]models.Provider, len(c.providers))
	for i, p := range c.providers {
		p.Services = append([]string(nil), p.Services...)
		out[i] = p
	}
	return out
}

func (c *Catalog) Service(id string) (models.Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (c *Catalog) Provider(id string) (models.Provider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			p.Services = append([]string(nil), p.Services...)
			return p, true
		}
	}
	return models.Provider{}, false
}

// Slots returns the ordered times a provider works on day (nil when none).
func (c *Catalog) Slots(providerID, day string) []string {
	return append([]string(nil), c.availability[providerID][day]...)
}

// Availability returns a copy of one provider's week.
func (c *Catalog) Availability(providerID string) map[string][]string {
	out := make(map[string][]string)
	for day, times := range c.availability[providerID] {
		out[day] = append([]string(nil), times...)
	}
	return out
}

// ParseTimeOfDay parses "HH:MM" and checks it lies on the slot grid.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if t.Minute()%SlotMinutes != 0 {
		return 0, fmt.Errorf("time of day %q is off the %d-minute grid", s, SlotMinutes)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
