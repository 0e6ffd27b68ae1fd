package models

// Service is a bookable treatment. Defined at build time.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    int     `json:"duration"` // minutes
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Provider performs a subset of the services.
type Provider struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Services []string `json:"services"` // service ids
}

// Performs reports whether the provider offers serviceID.
func (p Provider) Performs(serviceID string) bool {
	for _, id := range p.Services {
		if id == serviceID {
			return true
		}
	}
	return false
}

// AvailabilityTable maps provider id -> weekday -> ordered "HH:MM" slots.
type AvailabilityTable map[string]map[string][]string
