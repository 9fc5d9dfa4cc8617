package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"utah_trips/internal/config"
	"utah_trips/internal/models"
	"utah_trips/internal/recommend"
)

// CreateDestination adds a destination to the catalog. Slug defaults to a
// kebab-cased name when omitted.
func CreateDestination(c *gin.Context) {
	var input models.Destination
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateDestination: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Slug == "" {
		input.Slug = slugify(input.Name)
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		if strings.Contains(err.Error(), "duplicate key") {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
			return
		}
		logrus.WithError(err).Error("CreateDestination: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create destination failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"destination": input})
}

// ListDestinations returns catalog entries with optional filters:
// category, subcategory, q (free-text), near=lat,lng + radius (miles), limit.
func ListDestinations(c *gin.Context) {
	query := config.DB.Model(&models.Destination{})

	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	if sub := c.Query("subcategory"); sub != "" {
		query = query.Where("subcategory = ? OR ? = ANY(subcategories)", sub, sub)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR description_short ILIKE ? OR description_long ILIKE ?",
			like, like, like, like,
		)
	}

	var destinations []models.Destination
	if err := query.Find(&destinations).Error; err != nil {
		logrus.WithError(err).Error("ListDestinations: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch destinations"})
		return
	}

	if near := c.Query("near"); near != "" {
		lat, lng, err := parseLatLng(near)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid near parameter: " + err.Error()})
			return
		}
		radius := 50.0
		if r := c.Query("radius"); r != "" {
			radius, err = strconv.ParseFloat(r, 64)
			if err != nil || radius <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius parameter"})
				return
			}
		}
		destinations = filterByDistance(destinations, lat, lng, radius)
	}

	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n >= 0 && n < len(destinations) {
			destinations = destinations[:n]
		}
	}

	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// GetDestination returns a single destination by numeric ID or slug.
func GetDestination(c *gin.Context) {
	dest, ok := findDestination(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": dest})
}

// UpdateDestination applies a partial update; only fields present in the
// payload change.
func UpdateDestination(c *gin.Context) {
	dest, ok := findDestination(c)
	if !ok {
		return
	}

	var input struct {
		Name                   *string   `json:"name"`
		Slug                   *string   `json:"slug"`
		Category               *string   `json:"category"`
		Subcategory            *string   `json:"subcategory"`
		Subcategories          *[]string `json:"subcategories"`
		Description            *string   `json:"description"`
		DescriptionShort       *string   `json:"description_short"`
		DescriptionLong        *string   `json:"description_long"`
		Latitude               *float64  `json:"latitude"`
		Longitude              *float64  `json:"longitude"`
		DriveTime              *int      `json:"drive_time"`
		IsIndoor               *bool     `json:"is_indoor"`
		IsWeatherDependent     *bool     `json:"is_weather_dependent"`
		TimeNeededMinutes      *int      `json:"time_needed_minutes"`
		AverageDurationMinutes *int      `json:"average_duration_minutes"`
		BestTimeOfDay          *string   `json:"best_time_of_day"`
		DifficultyLevel        *string   `json:"difficulty_level"`
		FamilyFriendly         *bool     `json:"family_friendly"`
		IsAccessible           *bool     `json:"is_accessible"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		dest.Name = *input.Name
	}
	if input.Slug != nil {
		dest.Slug = *input.Slug
	}
	if input.Category != nil {
		dest.Category = *input.Category
	}
	if input.Subcategory != nil {
		dest.Subcategory = *input.Subcategory
	}
	if input.Subcategories != nil {
		dest.Subcategories = pq.StringArray(*input.Subcategories)
	}
	if input.Description != nil {
		dest.Description = *input.Description
	}
	if input.DescriptionShort != nil {
		dest.DescriptionShort = *input.DescriptionShort
	}
	if input.DescriptionLong != nil {
		dest.DescriptionLong = *input.DescriptionLong
	}
	if input.Latitude != nil {
		dest.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		dest.Longitude = *input.Longitude
	}
	if input.DriveTime != nil {
		dest.DriveTime = *input.DriveTime
	}
	if input.IsIndoor != nil {
		dest.IsIndoor = *input.IsIndoor
	}
	if input.IsWeatherDependent != nil {
		dest.IsWeatherDependent = *input.IsWeatherDependent
	}
	if input.TimeNeededMinutes != nil {
		dest.TimeNeededMinutes = *input.TimeNeededMinutes
	}
	if input.AverageDurationMinutes != nil {
		dest.AverageDurationMinutes = *input.AverageDurationMinutes
	}
	if input.BestTimeOfDay != nil {
		dest.BestTimeOfDay = *input.BestTimeOfDay
	}
	if input.DifficultyLevel != nil {
		dest.DifficultyLevel = *input.DifficultyLevel
	}
	if input.FamilyFriendly != nil {
		dest.FamilyFriendly = *input.FamilyFriendly
	}
	if input.IsAccessible != nil {
		dest.IsAccessible = *input.IsAccessible
	}

	if err := config.DB.Save(&dest).Error; err != nil {
		logrus.WithError(err).Error("UpdateDestination: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": dest})
}

// DeleteDestination removes a destination by ID.
func DeleteDestination(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Delete(&models.Destination{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete destination"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
}

// findDestination loads the destination referenced by the :id parameter,
// accepting either a numeric ID or a slug. Writes the error response itself
// when the lookup fails.
func findDestination(c *gin.Context) (models.Destination, bool) {
	param := c.Param("id")
	var dest models.Destination
	var err error
	if _, numErr := strconv.ParseUint(param, 10, 64); numErr == nil {
		err = config.DB.First(&dest, param).Error
	} else {
		err = config.DB.Where("slug = ?", param).First(&dest).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		} else {
			logrus.WithError(err).Error("findDestination: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return dest, false
	}
	return dest, true
}

func filterByDistance(in []models.Destination, lat, lng, radiusMiles float64) []models.Destination {
	out := make([]models.Destination, 0, len(in))
	for _, d := range in {
		if !d.HasCoordinates() {
			continue
		}
		if recommend.DistanceMiles(lat, lng, d.Latitude, d.Longitude) <= radiusMiles {
			out = append(out, d)
		}
	}
	return out
}

func parseLatLng(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("expected lat,lng")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
