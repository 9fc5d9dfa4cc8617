package templates

import "fmt"

// Category is one of the nine fixed presentation buckets used to pick a
// destination page layout.
type Category string

const (
	OutdoorAdventure  Category = "outdoor-adventure"
	FoodDrink         Category = "food-drink"
	CulturalHeritage  Category = "cultural-heritage"
	YouthFamily       Category = "youth-family"
	ArtsEntertainment Category = "arts-entertainment"
	MovieMedia        Category = "movie-media"
	HiddenGems        Category = "hidden-gems"
	SeasonalEvents    Category = "seasonal-events"
	QuickEscapes      Category = "quick-escapes"
)

// Categories returns all template categories in their canonical order.
// The order matters: the subcategory match tier tests sets in this order.
func Categories() []Category {
	return []Category{
		OutdoorAdventure,
		FoodDrink,
		CulturalHeritage,
		YouthFamily,
		ArtsEntertainment,
		MovieMedia,
		HiddenGems,
		SeasonalEvents,
		QuickEscapes,
	}
}

// Display carries the presentation metadata for a category: the label shown
// in navigation, the three theme colors (primary, accent, background), and
// the editorial role the category plays on the site.
type Display struct {
	Name   string
	Colors [3]string
	Role   string
}

var displayTable = map[Category]Display{
	OutdoorAdventure: {
		Name:   "Outdoor Adventure",
		Colors: [3]string{"#2d6a4f", "#95d5b2", "#f1faee"},
		Role:   "Anchor category: the backbone of the catalog and the default landing experience.",
	},
	FoodDrink: {
		Name:   "Food & Drink",
		Colors: [3]string{"#9d0208", "#f48c06", "#fff3e0"},
		Role:   "Pairing category: attached to nearly every itinerary as the meal stop.",
	},
	CulturalHeritage: {
		Name:   "Cultural Heritage",
		Colors: [3]string{"#6f1d1b", "#bb9457", "#f5ebe0"},
		Role:   "Depth category: museums and historic sites that reward a longer visit.",
	},
	YouthFamily: {
		Name:   "Youth & Family",
		Colors: [3]string{"#0077b6", "#90e0ef", "#f0fbff"},
		Role:   "Trust category: everything here is vetted for kids and strollers.",
	},
	ArtsEntertainment: {
		Name:   "Arts & Entertainment",
		Colors: [3]string{"#5a189a", "#c77dff", "#f8f0ff"},
		Role:   "Evening category: venues and performances that fill the after-dinner slot.",
	},
	MovieMedia: {
		Name:   "Movie & Media",
		Colors: [3]string{"#343a40", "#ffd60a", "#f8f9fa"},
		Role:   "Novelty category: filming locations that convert browsers into planners.",
	},
	HiddenGems: {
		Name:   "Hidden Gems",
		Colors: [3]string{"#1b4332", "#d8f3dc", "#fefae0"},
		Role:   "Loyalty category: insider spots that give repeat visitors a reason to return.",
	},
	SeasonalEvents: {
		Name:   "Seasonal Events",
		Colors: [3]string{"#bc6c25", "#dda15e", "#fefae0"},
		Role:   "Urgency category: time-boxed happenings that drive newsletter signups.",
	},
	QuickEscapes: {
		Name:   "Quick Escapes",
		Colors: [3]string{"#386641", "#a7c957", "#f2f7f2"},
		Role:   "Frequency category: short-drive outings for locals with a free afternoon.",
	},
}

// DisplayFor returns the presentation metadata for a category. The table is
// verified exhaustive at init, so a miss can only mean an unknown category.
func DisplayFor(c Category) (Display, bool) {
	d, ok := displayTable[c]
	return d, ok
}

// Validate checks the fixed tables for completeness: every category must
// have display metadata and a subcategory tag set, and no tag may appear in
// two sets. A failure is a configuration defect, not a runtime condition.
func Validate() error {
	seen := make(map[string]Category)
	for _, c := range Categories() {
		if _, ok := displayTable[c]; !ok {
			return fmt.Errorf("templates: no display metadata for category %q", c)
		}
		tags, ok := subcategoryTags[c]
		if !ok {
			return fmt.Errorf("templates: no subcategory tag set for category %q", c)
		}
		for _, t := range tags {
			if prev, dup := seen[t]; dup {
				return fmt.Errorf("templates: tag %q appears in both %q and %q", t, prev, c)
			}
			seen[t] = c
		}
	}
	if len(displayTable) != len(Categories()) {
		return fmt.Errorf("templates: display table has %d entries, want %d", len(displayTable), len(Categories()))
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
