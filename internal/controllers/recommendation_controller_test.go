package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"utah_trips/internal/models"
)

// A current destination without coordinates yields 200 with an empty list in
// the JSON body, not null and not an error.
func TestServeRecommendationsNoCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/destinations/1/recommendations", nil)

	current := models.Destination{
		Model:    gorm.Model{ID: 1},
		Name:     "Unmapped Overlook",
		Category: "outdoor-adventure",
	}
	candidates := []models.Destination{
		{
			Model:     gorm.Model{ID: 2},
			Name:      "Red Iguana",
			Category:  "food-drink",
			Latitude:  40.77,
			Longitude: -111.91,
		},
	}

	serveRecommendations(c, current, candidates)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
}

// Bad query parameters fail before scoring.
func TestServeRecommendationsBadLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/destinations/1/recommendations?limit=zero", nil)

	serveRecommendations(c, models.Destination{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid limit")
}
