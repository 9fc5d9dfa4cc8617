package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utah_trips/internal/models"
)

func TestDestination_Duration(t *testing.T) {
	tests := []struct {
		name string
		dest models.Destination
		want int
	}{
		{"time_needed wins", models.Destination{TimeNeededMinutes: 120, AverageDurationMinutes: 90}, 120},
		{"average as fallback", models.Destination{AverageDurationMinutes: 90}, 90},
		{"default when both missing", models.Destination{}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dest.Duration())
		})
	}
}

func TestDestination_HasCoordinates(t *testing.T) {
	assert.False(t, models.Destination{}.HasCoordinates())
	assert.True(t, models.Destination{Latitude: 40.76, Longitude: -111.89}.HasCoordinates())
	// A point on the equator or prime meridian still counts.
	assert.True(t, models.Destination{Latitude: 0, Longitude: -111.89}.HasCoordinates())
}

func TestDestination_HasTag(t *testing.T) {
	d := models.Destination{
		Subcategory:   "hiking-trails",
		Subcategories: []string{"camping", "hot-springs"},
	}
	assert.True(t, d.HasTag("hiking-trails"))
	assert.True(t, d.HasTag("hot-springs"))
	assert.False(t, d.HasTag("museums"))
}
