package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utah_trips/internal/models"
	"utah_trips/internal/templates"
)

func TestClassify_SubcategoryMatch(t *testing.T) {
	tests := []struct {
		name        string
		subcategory string
		want        templates.Category
	}{
		{"brewery tag", "craft-breweries", templates.FoodDrink},
		{"legacy brewery alias", "breweries", templates.FoodDrink},
		{"hiking", "hiking-trails", templates.OutdoorAdventure},
		{"museum", "museums", templates.CulturalHeritage},
		{"legacy museum alias", "museums-galleries", templates.CulturalHeritage},
		{"splash pad", "splash-pads", templates.YouthFamily},
		{"live music", "live-music", templates.ArtsEntertainment},
		{"film location", "film-locations", templates.MovieMedia},
		{"secret spot", "secret-spots", templates.HiddenGems},
		{"fall foliage", "fall-foliage", templates.SeasonalEvents},
		{"scenic drive", "scenic-drives", templates.QuickEscapes},
		{"uppercase is normalized", "Craft-Breweries", templates.FoodDrink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := models.Destination{Name: "X", Subcategory: tt.subcategory}
			assert.Equal(t, tt.want, templates.Classify(d))
		})
	}
}

func TestClassify_SubcategoryBeatsKeywords(t *testing.T) {
	// A curator tag is authoritative even when the description screams
	// another category.
	d := models.Destination{
		Name:        "Wasatch Taproom",
		Subcategory: "craft-breweries",
		Description: "Right next door to a museum of pioneer history.",
	}
	assert.Equal(t, templates.FoodDrink, templates.Classify(d))
}

func TestClassify_KeywordHeuristics(t *testing.T) {
	tests := []struct {
		name string
		dest models.Destination
		want templates.Category
	}{
		{
			"restaurant in description",
			models.Destination{Name: "Red Iguana", Description: "A beloved restaurant in Salt Lake City."},
			templates.FoodDrink,
		},
		{
			"museum in name",
			models.Destination{Name: "Natural History Museum of Utah"},
			templates.CulturalHeritage,
		},
		{
			"keyword in long description only",
			models.Destination{Name: "Somewhere", DescriptionLong: "a hidden canyon only insiders know"},
			templates.HiddenGems,
		},
		{
			"film site",
			models.Destination{Name: "Forrest Gump Point", Description: "Famous movie stop on US-163."},
			templates.MovieMedia,
		},
		{
			"family attraction",
			models.Destination{Name: "Loveland Living Planet Aquarium", Description: "an aquarium the kids will love"},
			templates.YouthFamily,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templates.Classify(tt.dest))
		})
	}
}

func TestClassify_KeywordPriorityOrder(t *testing.T) {
	// food-drink is tested before cultural-heritage, so a description with
	// both "restaurant" and "museum" resolves to food-drink.
	d := models.Destination{
		Name:        "Trolley Square",
		Description: "home to a restaurant and a museum",
	}
	assert.Equal(t, templates.FoodDrink, templates.Classify(d))

	// cultural-heritage before seasonal-events: museum + festival.
	d = models.Destination{
		Name:        "Fort Douglas",
		Description: "a museum that hosts an annual festival",
	}
	assert.Equal(t, templates.CulturalHeritage, templates.Classify(d))
}

func TestClassify_DriveTimeFallback(t *testing.T) {
	d := models.Destination{Name: "Ensign Peak", DriveTime: 45}
	assert.Equal(t, templates.QuickEscapes, templates.Classify(d))
}

func TestClassify_CategoryBucketFallback(t *testing.T) {
	d := models.Destination{Name: "Gallivan Plaza", Category: "Downtown & Nearby", DriveTime: 500}
	assert.Equal(t, templates.QuickEscapes, templates.Classify(d))
}

func TestClassify_Default(t *testing.T) {
	d := models.Destination{Name: "Bonneville Salt Flats", DriveTime: 500}
	assert.Equal(t, templates.OutdoorAdventure, templates.Classify(d))
}

func TestClassify_Total(t *testing.T) {
	// Every destination classifies to one of the nine categories, however
	// sparse the record.
	known := make(map[templates.Category]bool)
	for _, c := range templates.Categories() {
		known[c] = true
	}

	sparse := []models.Destination{
		{Name: "Somewhere"},
		{},
		{Name: "X", Subcategory: "not-a-real-tag"},
		{Name: "Y", Subcategory: "  "},
		{Name: "Z", DriveTime: -5},
	}
	for _, d := range sparse {
		got := templates.Classify(d)
		assert.True(t, known[got], "Classify returned unknown category %q", got)
	}
}

func TestClassify_UnknownSubcategoryFallsThrough(t *testing.T) {
	// An unrecognized tag does not short-circuit the keyword tier.
	d := models.Destination{
		Name:        "Beehive Distilling",
		Subcategory: "mystery-tag",
		Description: "a small batch distillery",
	}
	assert.Equal(t, templates.FoodDrink, templates.Classify(d))
}
