package recommend

import (
	"time"

	"utah_trips/internal/models"
	"utah_trips/internal/templates"
)

// Factor names the five scoring signals. Explanation templates and the
// primary/complementary factor fields are keyed by these values.
type Factor string

const (
	FactorTime       Factor = "time_complementarity"
	FactorProximity  Factor = "proximity"
	FactorCategory   Factor = "category"
	FactorWeather    Factor = "weather"
	FactorPreference Factor = "preference"
)

// Weather is the current conditions at the visitor's location, when known.
type Weather struct {
	// Condition is a free-text condition string ("rain", "clear", ...).
	Condition string
	// TempF is the temperature in degrees Fahrenheit.
	TempF float64
}

// Preferences are optional visitor preferences carried on the request.
type Preferences struct {
	FavoriteCategories  []templates.Category
	PreferredDifficulty string
	// MaxDriveMinutes is the visitor's drive-time budget; 0 means no budget.
	MaxDriveMinutes int
	WantsFamilyFriendly bool
	NeedsAccessible     bool
}

// Context is everything known about the visitor's current situation.
// Current is the destination the visitor is looking at; Now is the request
// timestamp. The optional fields default to "unknown" and only ever improve
// a candidate's score resolution, never fail it.
type Context struct {
	Current          models.Destination
	Now              time.Time
	Preferences      *Preferences
	Weather          *Weather
	PreviousVisits   []uint
	CurrentItinerary []uint
}

// Options controls filtering and result shaping for one Recommend call.
type Options struct {
	// Limit is the maximum number of results; 0 means the default of 3.
	Limit int
	// MaxDistanceMiles bounds the proximity factor; 0 means the default of 50.
	MaxDistanceMiles float64
	// MustIncludeCategories keeps only candidates matching at least one entry
	// (against primary category, raw category bucket, or subcategory tags).
	MustIncludeCategories []string
	// ExcludeCategories drops candidates matching any entry.
	ExcludeCategories []string
}

const (
	defaultLimit            = 3
	defaultMaxDistanceMiles = 50.0
)

// VisitOrder suggests when to slot the candidate relative to the current
// visit.
type VisitOrder string

const (
	OrderBefore  VisitOrder = "before"
	OrderAfter   VisitOrder = "after"
	OrderSameDay VisitOrder = "same-day"
)

// Recommendation is one scored candidate. Explanation is shown verbatim to
// end users.
type Recommendation struct {
	Destination         models.Destination `json:"destination"`
	Score               float64            `json:"score"`
	PrimaryFactor       Factor             `json:"primary_factor"`
	ComplementaryFactor Factor             `json:"complementary_factor"`
	TimeRelevance       float64            `json:"time_relevance"`
	ProximityFactor     float64            `json:"proximity_factor"`
	DistanceMiles       float64            `json:"distance_miles"`
	SuggestedOrder      VisitOrder         `json:"suggested_order"`
	Explanation         string             `json:"explanation"`
}
