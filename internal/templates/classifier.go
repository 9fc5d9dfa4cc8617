package templates

import (
	"strings"

	"utah_trips/internal/models"
)

// subcategoryTags maps each category to the curator vocabulary that selects
// it. Entries are matched case-insensitively against Destination.Subcategory.
// Several sets carry legacy aliases from earlier imports ("breweries",
// "museums-galleries"); keep them until the content team finishes migrating
// old rows.
var subcategoryTags = map[Category][]string{
	OutdoorAdventure: {
		"hiking-trails", "mountain-biking", "rock-climbing", "ski-resorts",
		"national-parks", "state-parks", "lakes-reservoirs", "camping",
		"fishing", "wildlife-watching", "atv-offroad", "hot-springs",
		"canyoneering", "backcountry",
	},
	FoodDrink: {
		"restaurants", "craft-breweries", "breweries", "coffee-culture",
		"distilleries-wineries", "farmers-markets", "food-trucks",
		"bakeries-desserts", "fine-dining", "local-eats",
	},
	CulturalHeritage: {
		"museums", "museums-galleries", "pioneer-history",
		"native-american-heritage", "historic-sites", "ghost-towns",
		"heritage-railways", "archaeological-sites", "temples-tabernacles",
	},
	YouthFamily: {
		"family-fun", "playgrounds-parks", "aquariums-zoos", "theme-parks",
		"splash-pads", "kid-friendly-museums", "mini-golf-arcades",
		"swimming-pools",
	},
	ArtsEntertainment: {
		"live-music", "theater-performing-arts", "art-galleries",
		"concert-venues", "nightlife", "comedy-clubs", "public-art",
		"dance-opera",
	},
	MovieMedia: {
		"film-locations", "movie-sets", "tv-filming-spots",
		"western-film-heritage", "sundance-venues", "media-tours",
	},
	HiddenGems: {
		"secret-spots", "local-favorites", "off-the-beaten-path",
		"insider-tips", "quiet-escapes", "underrated-towns",
		"hidden-waterfalls", "secret-viewpoints",
	},
	SeasonalEvents: {
		"fall-foliage", "winter-festivals", "spring-blooms",
		"summer-concerts", "holiday-lights", "harvest-festivals",
		"seasonal-markets", "annual-events",
	},
	QuickEscapes: {
		"downtown-strolls", "city-parks", "scenic-drives", "urban-trails",
		"half-day-trips", "nearby-overlooks", "weekend-walks",
		"lunch-outings",
	},
}

// keywordRule pairs a category with the free-text substrings that suggest it.
type keywordRule struct {
	category Category
	keywords []string
}

// keywordRules is the second classification tier, scanned over the
// lower-cased name and descriptions. Rule order is behaviorally significant:
// the first substring hit wins, so a description mentioning both a museum
// and a festival lands on cultural-heritage.
var keywordRules = []keywordRule{
	{FoodDrink, []string{
		"restaurant", "cafe", "brewery", "coffee", "diner", "bakery",
		"distillery", "winery", "eatery", "brunch",
	}},
	{CulturalHeritage, []string{
		"museum", "historic", "heritage", "pioneer", "monument",
		"memorial", "tabernacle", "archaeolog",
	}},
	{YouthFamily, []string{
		"family", "kids", "children", "playground", "zoo", "aquarium",
		"splash pad",
	}},
	{SeasonalEvents, []string{
		"festival", "seasonal", "holiday lights", "pumpkin", "christmas",
		"fall colors",
	}},
	{HiddenGems, []string{
		"secret", "hidden", "insider", "off the beaten", "little-known",
		"local favorite",
	}},
	{ArtsEntertainment, []string{
		"theater", "theatre", "gallery", "concert", "live music",
		"performing arts", "nightlife",
	}},
	{MovieMedia, []string{
		"film", "movie", "filming location", "hollywood", "sundance",
	}},
	{QuickEscapes, []string{
		"downtown", "stroll", "quick trip", "lunch break", "short walk",
	}},
}

// quickEscapeDriveTime is the drive-time ceiling (minutes) for the weak
// last-resort quick-escapes signal.
const quickEscapeDriveTime = 90

// Classify maps a destination to exactly one template category. It never
// fails: sparse or malformed records degrade to the outdoor-adventure
// default rather than erroring.
//
// Tiers, first match wins:
//  1. curator subcategory against the fixed tag sets (authoritative),
//  2. keyword heuristics over name + descriptions (best effort),
//  3. short drive time or a downtown/nearby category bucket (weak),
//  4. outdoor-adventure (the catalog is outdoor-heavy, so it is the safe
//     general default).
func Classify(d models.Destination) Category {
	if sub := strings.ToLower(strings.TrimSpace(d.Subcategory)); sub != "" {
		for _, c := range Categories() {
			for _, tag := range subcategoryTags[c] {
				if sub == tag {
					return c
				}
			}
		}
	}

	text := searchText(d)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}

	bucket := strings.ToLower(d.Category)
	if (d.DriveTime > 0 && d.DriveTime <= quickEscapeDriveTime) ||
		strings.Contains(bucket, "downtown") || strings.Contains(bucket, "nearby") {
		return QuickEscapes
	}

	return OutdoorAdventure
}

// TagsFor returns the subcategory vocabulary that selects a category.
// The returned slice must not be mutated.
func TagsFor(c Category) []string {
	return subcategoryTags[c]
}

func searchText(d models.Destination) string {
	return strings.ToLower(strings.Join([]string{
		d.Name, d.Description, d.DescriptionShort, d.DescriptionLong,
	}, " "))
}
