package models

import (
	"time"
)

// Cell is a manually-defined storage slot on a shelf. It optionally holds
// one product; the product reference is a weak link, not ownership, so
// deleting a product only clears the cells that held it.
type Cell struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Shelf     Ref[Shelf]    `json:"shelf"`
	Product   *Ref[Product] `json:"product"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
