package models

import (
	"time"
)

// Position is a rack's physical placement inside its section, in meters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rack is a physical shelving unit within a section. It contains shelves
// ordered by level.
type Rack struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Section   Ref[Section] `json:"section"`
	Position  Position     `json:"position"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
