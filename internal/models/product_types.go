package models

import (
	"time"
)

// Product is an item type that can occupy a cell. It is tracked by barcode
// and RFID tag; quantity is the number of units of this item type, not a
// per-cell stock ledger.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    Ref[Category] `json:"category"`
	Barcode     string        `json:"barcode"`
	RFID        string        `json:"rfid"`
	Quantity    int           `json:"quantity"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
