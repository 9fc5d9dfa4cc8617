package models

import (
	"gorm.io/gorm"
)

// TripKitStop is one ordered stop on a TripKit itinerary.
// Seq indicates visit order; name and coordinates are denormalized from the
// referenced destination so a kit still renders if a destination is retired.
type TripKitStop struct {
	gorm.Model

	Name string  `json:"name" binding:"required"`
	Seq  int     `json:"seq" binding:"required"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`

	DestinationID uint `json:"destination_id"`

	// Foreign key to trip kit
	TripKitID uint `json:"trip_kit_id"`
}
