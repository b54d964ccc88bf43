package models

import (
	"time"
)

// Shelf is one level of a rack. Level 0 is the lowest; levels are unique
// within a rack.
type Shelf struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rack      Ref[Rack] `json:"rack"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
