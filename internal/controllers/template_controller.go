package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utah_trips/internal/templates"
)

// TemplateResponse is the classifier verdict plus the display metadata the
// page renderer needs to pick and theme a layout.
type TemplateResponse struct {
	Category      templates.Category `json:"category"`
	DisplayName   string             `json:"display_name"`
	Colors        [3]string          `json:"colors"`
	StrategicRole string             `json:"strategic_role"`
}

// GetDestinationTemplate classifies a destination and returns its template
// category with display metadata.
func GetDestinationTemplate(c *gin.Context) {
	dest, ok := findDestination(c)
	if !ok {
		return
	}

	category := templates.Classify(dest)
	display, found := templates.DisplayFor(category)
	if !found {
		// Validate() at init makes this unreachable; report rather than panic.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no display metadata for category " + string(category)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": TemplateResponse{
		Category:      category,
		DisplayName:   display.Name,
		Colors:        display.Colors,
		StrategicRole: display.Role,
	}})
}

// ListTemplates returns all nine template categories with display metadata,
// for the site's navigation chrome.
func ListTemplates(c *gin.Context) {
	out := make([]TemplateResponse, 0, len(templates.Categories()))
	for _, cat := range templates.Categories() {
		display, _ := templates.DisplayFor(cat)
		out = append(out, TemplateResponse{
			Category:      cat,
			DisplayName:   display.Name,
			Colors:        display.Colors,
			StrategicRole: display.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"templates": out})
}
