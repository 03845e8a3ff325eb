package domain

import "time"

type Equipment struct {
	ID          int32   `json:"id"`
	OwnerID     int32   `json:"owner"`
	OwnerName   string  `json:"ownerName,omitempty"` // populated on reads, never stored
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay"`
	Location    string  `json:"location"`
	Image       string  `json:"image,omitempty"`
	// IsAvailable is under the owner's manual control and is independent
	// of any booking state.
	IsAvailable    bool              `json:"isAvailable"`
	Specifications map[string]string `json:"specifications"`
	Terms          string            `json:"terms,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}
