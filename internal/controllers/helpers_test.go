package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utah_trips/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bonneville Salt Flats", "bonneville-salt-flats"},
		{"Fisher Towers!", "fisher-towers"},
		{"  Dead Horse Point  ", "dead-horse-point"},
		{"Zion's Main Canyon", "zion-s-main-canyon"},
		{"US-163 Mile 13", "us-163-mile-13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestParseLatLng(t *testing.T) {
	lat, lng, err := parseLatLng("40.76,-111.89")
	require.NoError(t, err)
	assert.Equal(t, 40.76, lat)
	assert.Equal(t, -111.89, lng)

	lat, lng, err = parseLatLng(" 40.76 , -111.89 ")
	require.NoError(t, err)
	assert.Equal(t, 40.76, lat)
	assert.Equal(t, -111.89, lng)

	_, _, err = parseLatLng("40.76")
	assert.Error(t, err)

	_, _, err = parseLatLng("a,b")
	assert.Error(t, err)
}

func TestFilterByDistance(t *testing.T) {
	in := []models.Destination{
		{Name: "near", Latitude: 40.77, Longitude: -111.90},
		{Name: "far", Latitude: 41.50, Longitude: -112.50},
		{Name: "no coords"},
	}
	out := filterByDistance(in, 40.76, -111.89, 10)
	require.Len(t, out, 1)
	assert.Equal(t, "near", out[0].Name)
}
