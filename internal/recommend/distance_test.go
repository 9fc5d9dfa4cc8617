package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utah_trips/internal/recommend"
)

func TestDistanceMiles(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 40.76, -111.89, 40.76, -111.89, 0, 0.001},
		// Salt Lake City Temple Square to Provo center, roughly 40 miles.
		{"slc to provo", 40.7701, -111.8910, 40.2338, -111.6585, 38.5, 2.0},
		// One degree of latitude is about 69 miles.
		{"one degree latitude", 40.0, -111.89, 41.0, -111.89, 69.0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommend.DistanceMiles(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := recommend.DistanceMiles(40.76, -111.89, 38.57, -109.55)
	b := recommend.DistanceMiles(38.57, -109.55, 40.76, -111.89)
	assert.InDelta(t, a, b, 1e-9)
}
