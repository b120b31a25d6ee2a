package model

import "time"

// Delivery is a supplier-stocking event. Append-only: once recorded it is
// never edited, only cascade-deleted together with its item.
type Delivery struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	Supplier   string    `json:"supplier"`
	ReceivedAt time.Time `json:"input_date"`
}

// Reservation earmarks quantity against an item's name pool. There is no
// cancel or fulfil operation: a reservation reduces availability for as long
// as it exists.
type Reservation struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	Quantity   int       `json:"quantity"`
	ReservedBy string    `json:"reserved_by"`
	ReservedAt time.Time `json:"reserved_at"`
	Code       string    `json:"reservation_code,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// Pickup records removal of stock. It only counts toward a pool's output
// once confirmed; an unconfirmed pickup stays in the log but never affects
// derived quantities.
type Pickup struct {
	ID               string     `json:"id"`
	ItemID           string     `json:"item_id"`
	Quantity         int        `json:"quantity"`
	PickedUpBy       string     `json:"picked_up_by"`
	PickedUpAt       time.Time  `json:"picked_up_at"`
	ConfirmationCode string     `json:"confirmation_code,omitempty"`
	ConfirmedAt      *time.Time `json:"confirmed_at,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// Confirmed reports whether the pickup counts toward output.
func (p *Pickup) Confirmed() bool {
	return p.ConfirmedAt != nil
}
