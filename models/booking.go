package models

import (
	"fmt"
	"strings"
	"time"
)

// WallClockLayout is the persisted form of a timezone-naive local instant.
const WallClockLayout = "2006-01-02T15:04:05"

// WallClock is a local wall-clock instant persisted without a zone offset.
type WallClock struct {
	time.Time
}

func NewWallClock(t time.Time) WallClock {
	return WallClock{Time: t}
}

func (w WallClock) MarshalJSON() ([]byte, error) {
	if w.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + w.Format(WallClockLayout) + `"`), nil
}

func (w *WallClock) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		w.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(WallClockLayout, s, time.Local)
	if err != nil {
		// Older records may carry a full RFC 3339 timestamp.
		rt, rerr := time.Parse(time.RFC3339Nano, s)
		if rerr != nil {
			return fmt.Errorf("invalid wall-clock time %q: %w", s, err)
		}
		t = rt.In(time.Local)
	}
	w.Time = t
	return nil
}

// Reservation is a persisted booking. It is never mutated after creation:
// cancellation deletes it.
type Reservation struct {
	ID         string    `json:"-"`
	Username   string    `json:"username"`
	Client     string    `json:"client"`
	Service    string    `json:"service"`
	ProviderID string    `json:"providerId"`
	Provider   string    `json:"barber"`
	DateTime   WallClock `json:"dateTime"`
	// CreatedAt orders reservations that share a slot.
	CreatedAt time.Time `json:"createdAt"`
}

// BookingSelection is the transient wizard state. Fields fill in order and
// only a prefix of (Service, Provider, Day, Time) is ever populated.
type BookingSelection struct {
	Service  *Service  `json:"service,omitempty"`
	Provider *Provider `json:"provider,omitempty"`
	Day      string    `json:"day,omitempty"`
	Time     string    `json:"time,omitempty"`
}

// Empty reports whether nothing has been selected.
func (s BookingSelection) Empty() bool {
	return s.Service == nil && s.Provider == nil && s.Day == "" && s.Time == ""
}

// Complete reports whether all four fields are populated.
func (s BookingSelection) Complete() bool {
	return s.Service != nil && s.Provider != nil && s.Day != "" && s.Time != ""
}
