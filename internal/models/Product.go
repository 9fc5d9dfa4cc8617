package models

import (
	"gorm.io/gorm"
)

// Product is an affiliate gear recommendation shown alongside a destination.
type Product struct {
	gorm.Model
	Name          string `json:"name"`
	Vendor        string `json:"vendor"`
	URL           string `json:"url"`
	PriceCents    int    `json:"price_cents"`
	DestinationID uint   `json:"destination_id"`
	InStock       bool   `json:"in_stock" gorm:"default:true"`
}
