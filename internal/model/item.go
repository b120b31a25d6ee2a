package model

import "time"

// Item is a catalog row for one (code, name, supplier-batch) combination.
// Rows sharing the same name pool their stock: output, stock, reserved and
// available are always identical across the pool after reconciliation, while
// input tracks each row's own deliveries.
//
// JSON tags keep the field names of the original persisted datasets
// (Serbian for the hardware subtype and last-actor fields) so previously
// exported collections remain loadable.
type Item struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Project  string  `json:"project"`
	Location string  `json:"lokacija,omitempty"`
	Supplier string  `json:"supplier"`
	Price    float64 `json:"price"`

	// Derived quantities, written only by the reconciliation engine.
	Input     int `json:"input"`
	Output    int `json:"output"`
	Stock     int `json:"stock"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`

	// Hardware subtype attribute groups. An item may carry values for at
	// most one of the two groups.
	OkovName   string  `json:"okov_ime,omitempty"`
	OkovPrice  float64 `json:"okov_cena,omitempty"`
	OkovQty    int     `json:"okov_kom,omitempty"`
	PloceName  string  `json:"ploce_ime,omitempty"`
	PlocePrice float64 `json:"ploce_cena,omitempty"`
	PloceQty   int     `json:"ploce_kom,omitempty"`

	// Last-actor fields, denormalized by the reconciliation engine from the
	// latest reservation and latest confirmed pickup in the item's name pool.
	LastReservedBy      string     `json:"rezervisao,omitempty"`
	LastReservedAt      *time.Time `json:"vreme_rezervacije,omitempty"`
	LastReservationCode string     `json:"sifra_rezervacije,omitempty"`
	LastPickedUpBy      string     `json:"preuzeo,omitempty"`
	LastPickedUpAt      *time.Time `json:"vreme_preuzimanja,omitempty"`
	LastPickupCode      string     `json:"sifra_preuzimanja,omitempty"`

	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasOkov reports whether the item carries any Okov attribute values.
func (i *Item) HasOkov() bool {
	return i.OkovName != "" || i.OkovPrice > 0 || i.OkovQty > 0
}

// HasPloce reports whether the item carries any Ploče attribute values.
func (i *Item) HasPloce() bool {
	return i.PloceName != "" || i.PlocePrice > 0 || i.PloceQty > 0
}
