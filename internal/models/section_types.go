package models

import (
	"time"
)

// Section is a named zone within a warehouse, containing racks.
type Section struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Warehouse Ref[Warehouse] `json:"warehouse"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
