package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Destination is a single point of interest in the catalog.
// Category is the coarse drive-time bucket assigned by the content team;
// Subcategory is the curator-assigned fine-grained tag.
type Destination struct {
	gorm.Model

	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" gorm:"uniqueIndex"`

	Category      string         `json:"category"`
	Subcategory   string         `json:"subcategory"`
	Subcategories pq.StringArray `json:"subcategories" gorm:"type:text[]"`

	Description      string `json:"description"`
	DescriptionShort string `json:"description_short"`
	DescriptionLong  string `json:"description_long"`

	// (0, 0) means coordinates are unknown.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Minutes from Salt Lake City; 0 means unknown.
	DriveTime int `json:"drive_time"`

	IsIndoor           bool `json:"is_indoor"`
	IsWeatherDependent bool `json:"is_weather_dependent"`

	TimeNeededMinutes      int    `json:"time_needed_minutes"`
	AverageDurationMinutes int    `json:"average_duration_minutes"`
	BestTimeOfDay          string `json:"best_time_of_day"` // "morning", "evening" or ""
	DifficultyLevel        string `json:"difficulty_level"`
	FamilyFriendly         bool   `json:"family_friendly"`
	IsAccessible           bool   `json:"is_accessible"`
}

// Duration resolves the two synonymous duration columns into one value.
// Imported rows carry either time_needed_minutes or average_duration_minutes;
// when both are missing the visit is assumed to take an hour.
func (d Destination) Duration() int {
	if d.TimeNeededMinutes > 0 {
		return d.TimeNeededMinutes
	}
	if d.AverageDurationMinutes > 0 {
		return d.AverageDurationMinutes
	}
	return 60
}

// HasCoordinates reports whether the destination carries a usable location.
func (d Destination) HasCoordinates() bool {
	return d.Latitude != 0 || d.Longitude != 0
}

// HasTag reports whether tag is in the subcategory tag set or equals the
// primary subcategory.
func (d Destination) HasTag(tag string) bool {
	if d.Subcategory == tag {
		return true
	}
	for _, t := range d.Subcategories {
		if t == tag {
			return true
		}
	}
	return false
}
