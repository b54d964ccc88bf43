package models

// EntityType names one of the stored record kinds. Used by the hierarchy
// query layer to address parent/child edges generically.
type EntityType string

const (
	EntityCategory  EntityType = "category"
	EntityProduct   EntityType = "product"
	EntityWarehouse EntityType = "warehouse"
	EntitySection   EntityType = "section"
	EntityRack      EntityType = "rack"
	EntityShelf     EntityType = "shelf"
	EntityCell      EntityType = "cell"
)
