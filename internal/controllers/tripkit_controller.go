package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"utah_trips/internal/config"
	"utah_trips/internal/models"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// TripKitResponse mirrors models.TripKit but renders the stored WKB route
// geometry as a GeoJSON string for API output.
type TripKitResponse struct {
	ID          uint                 `json:"ID"`
	CreatedAt   time.Time            `json:"CreatedAt"`
	UpdatedAt   time.Time            `json:"UpdatedAt"`
	DeletedAt   gorm.DeletedAt       `json:"DeletedAt,omitempty"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	PriceCents  int                  `json:"price_cents"`
	Geometry    string               `json:"geometry"`
	Stops       []models.TripKitStop `json:"stops"`
}

func toTripKitResponse(kit models.TripKit) TripKitResponse {
	jsonGeom, _ := convertWKBToGeoJSON(kit.Geometry)
	return TripKitResponse{
		ID:          kit.ID,
		CreatedAt:   kit.CreatedAt,
		UpdatedAt:   kit.UpdatedAt,
		DeletedAt:   kit.DeletedAt,
		Name:        kit.Name,
		Slug:        kit.Slug,
		Description: kit.Description,
		PriceCents:  kit.PriceCents,
		Geometry:    jsonGeom,
		Stops:       kit.Stops,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and returns WKB bytes
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	err := gjson.Unmarshal([]byte(raw), &g)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateTripKit creates a trip kit with a GeoJSON LineString route and its
// ordered stops in one transaction.
func CreateTripKit(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		PriceCents  int    `json:"price_cents"`
		Geometry    string `json:"geometry"` // GeoJSON string
		Stops       []struct {
			Name          string  `json:"name"`
			Seq           int     `json:"seq"`
			Lat           float64 `json:"lat"`
			Lng           float64 `json:"lng"`
			DestinationID uint    `json:"destination_id"`
		} `json:"stops"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateTripKit: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Slug == "" {
		input.Slug = slugify(input.Name)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	wkbGeom, err := parseAndConvertGeometry(input.Geometry)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
		return
	}

	kit := models.TripKit{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Geometry:    wkbGeom,
	}
	if err := tx.Create(&kit).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create trip kit failed: " + err.Error()})
		return
	}

	for _, s := range input.Stops {
		stop := models.TripKitStop{
			Name: s.Name, Seq: s.Seq, Lat: s.Lat, Lng: s.Lng,
			DestinationID: s.DestinationID, TripKitID: kit.ID,
		}
		if err := tx.Create(&stop).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create stop failed: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Stops").First(&kit, kit.ID)
	c.JSON(http.StatusCreated, gin.H{"trip_kit": toTripKitResponse(kit)})
}

// ReplaceTripKitStops replaces the ordered stop list of an existing kit in
// one transaction.
func ReplaceTripKitStops(c *gin.Context) {
	kID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip kit ID"})
		return
	}

	var kit models.TripKit
	if err := config.DB.First(&kit, kID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip kit not found"})
		return
	}

	var input struct {
		Stops []models.TripKitStop `json:"stops" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	if err := tx.Where("trip_kit_id = ?", kit.ID).Delete(&models.TripKitStop{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear stops: " + err.Error()})
		return
	}
	for i := range input.Stops {
		input.Stops[i].TripKitID = kit.ID
	}
	if len(input.Stops) > 0 {
		if err := tx.Create(&input.Stops).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stops: " + err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	config.DB.Preload("Stops").First(&kit, kit.ID)
	c.JSON(http.StatusOK, gin.H{"trip_kit": toTripKitResponse(kit)})
}

// ListTripKits returns all trip kits with their stops.
func ListTripKits(c *gin.Context) {
	var kits []models.TripKit
	if err := config.DB.Preload("Stops").Find(&kits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch trip kits"})
		return
	}

	var responses []TripKitResponse
	for _, k := range kits {
		responses = append(responses, toTripKitResponse(k))
	}
	c.JSON(http.StatusOK, gin.H{"trip_kits": responses})
}

// GetTripKit returns a single trip kit with stops.
func GetTripKit(c *gin.Context) {
	kID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var kit models.TripKit
	if err := config.DB.Preload("Stops").First(&kit, kID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip kit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip_kit": toTripKitResponse(kit)})
}

// UpdateTripKit handles updating an existing trip kit.
func UpdateTripKit(c *gin.Context) {
	kID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logrus.WithError(err).Warn("UpdateTripKit: invalid trip kit ID in parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip kit ID"})
		return
	}

	var existing models.TripKit
	if err := config.DB.First(&existing, kID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip kit not found"})
		} else {
			logrus.WithError(err).Error("UpdateTripKit: database error fetching trip kit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		PriceCents  *int    `json:"price_cents"`
		Geometry    *string `json:"geometry"` // GeoJSON string
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateTripKit: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Slug != nil {
		existing.Slug = *input.Slug
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.PriceCents != nil {
		existing.PriceCents = *input.PriceCents
	}
	if input.Geometry != nil {
		if *input.Geometry == "" {
			existing.Geometry = nil
		} else {
			wkbGeom, err := parseAndConvertGeometry(*input.Geometry)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
				return
			}
			existing.Geometry = wkbGeom
		}
	}

	if err := config.DB.Save(&existing).Error; err != nil {
		logrus.WithError(err).Error("UpdateTripKit: failed to save updated trip kit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip_kit": toTripKitResponse(existing)})
}

// DeleteTripKit removes a trip kit and its stops.
func DeleteTripKit(c *gin.Context) {
	kID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip kit ID"})
		return
	}

	var kit models.TripKit
	if err := config.DB.First(&kit, kID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip kit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	if err := tx.Where("trip_kit_id = ?", kit.ID).Delete(&models.TripKitStop{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stops: " + err.Error()})
		return
	}

	if err := tx.Delete(&models.TripKit{}, kit.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip kit: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip kit deleted successfully"})
}
