package models

import (
	"gorm.io/gorm"
)

// TripKit is a curated, purchasable bundle of destinations sold as a
// ready-made itinerary. The suggested driving route between stops is
// stored in PostGIS as a LINESTRING (SRID 4326); callers submit GeoJSON
// and the controller converts it to WKB.
type TripKit struct {
	gorm.Model

	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	PriceCents  int    `json:"price_cents"`

	Geometry []byte `gorm:"type:bytea"`

	// Associations
	Stops []TripKitStop `gorm:"foreignKey:TripKitID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stops,omitempty"`
}
