package model

type Turf struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sport        string   `json:"sport"`
	PricePerHour int64    `json:"price_per_hour"`
	Description  string   `json:"description,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	ManagerID    string   `json:"manager_id"`
}

// PriceFor returns the cost of booking the turf for the given number of hours.
func (t *Turf) PriceFor(hours int) int64 {
	return t.PricePerHour * int64(hours)
}

type Manager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TurfFilter struct {
	Location string
	Sport    string
}
