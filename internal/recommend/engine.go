package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"utah_trips/internal/models"
	"utah_trips/internal/templates"
)

// Engine scores candidate destinations against a visitor context. It holds
// only immutable configuration, so a single Engine is safe for concurrent
// use across requests.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine, validating the configuration up front so a bad
// weight or pair table fails at startup rather than per request.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Pairs == nil {
		cfg.Pairs = PerfectPairs()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Recommend filters and scores the candidate pool, returning at most
// opts.Limit results ordered by descending score. Equal scores order by
// ascending destination ID so results are deterministic.
//
// The caller is responsible for the upstream geographic pre-filter; distance
// is still re-validated here. If the current destination has no coordinates
// the result is empty, never an error.
func (e *Engine) Recommend(ctx Context, candidates []models.Destination, opts Options) []Recommendation {
	if !ctx.Current.HasCoordinates() {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	maxDist := opts.MaxDistanceMiles
	if maxDist <= 0 {
		maxDist = defaultMaxDistanceMiles
	}

	skip := make(map[uint]bool, len(ctx.PreviousVisits)+len(ctx.CurrentItinerary)+1)
	skip[ctx.Current.ID] = true
	for _, id := range ctx.PreviousVisits {
		skip[id] = true
	}
	for _, id := range ctx.CurrentItinerary {
		skip[id] = true
	}

	results := make([]Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		if skip[cand.ID] || !cand.HasCoordinates() {
			continue
		}
		if !matchesCategoryFilters(cand, opts) {
			continue
		}
		results = append(results, e.score(ctx, cand, maxDist))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Destination.ID < results[j].Destination.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// score computes the five factor values and the weighted sum for one
// candidate, then derives the explanation fields.
func (e *Engine) score(ctx Context, cand models.Destination, maxDist float64) Recommendation {
	dist := DistanceMiles(ctx.Current.Latitude, ctx.Current.Longitude, cand.Latitude, cand.Longitude)

	timeScore := timeComplementarity(ctx, cand)
	proxScore := 1 - math.Min(dist/maxDist, 1)
	catScore := e.categoryComplementarity(ctx, cand)
	weatherScore := weatherFit(ctx.Weather, cand)
	prefScore := preferenceMatch(ctx.Preferences, cand)

	w := e.cfg.Weights
	total := timeScore*w.TimeComplementarity +
		proxScore*w.Proximity +
		catScore*w.Category +
		weatherScore*w.Weather +
		prefScore*w.Preference

	primary, secondary := topFactors(map[Factor]float64{
		FactorTime:       timeScore,
		FactorProximity:  proxScore,
		FactorCategory:   catScore,
		FactorWeather:    weatherScore,
		FactorPreference: prefScore,
	})

	order := suggestedOrder(ctx, cand)

	return Recommendation{
		Destination:         cand,
		Score:               total,
		PrimaryFactor:       primary,
		ComplementaryFactor: secondary,
		TimeRelevance:       timeScore,
		ProximityFactor:     proxScore,
		DistanceMiles:       dist,
		SuggestedOrder:      order,
		Explanation:         explain(primary, ctx.Current, cand, dist, order),
	}
}

// timeComplementarity rewards candidates that round out the visitor's day:
// a morning spot suggested in the evening, a short stop after a long one,
// an indoor break from an outdoor day. Two weather-dependent activities in a
// row double the exposure to a bad forecast, so that pairing is penalized.
func timeComplementarity(ctx Context, cand models.Destination) float64 {
	hour := ctx.Now.Hour()
	evening := hour >= 17
	morning := hour < 12

	switch {
	case evening && cand.BestTimeOfDay == "morning":
		return 0.9 // suggest for tomorrow
	case morning && cand.BestTimeOfDay == "evening":
		return 0.7
	}

	curDur := ctx.Current.Duration()
	candDur := cand.Duration()
	switch {
	case curDur >= 180 && candDur <= 60:
		return 0.8
	case curDur <= 60 && candDur >= 180:
		return 0.75
	}

	if ctx.Current.IsWeatherDependent && cand.IsWeatherDependent {
		return 0.3
	}
	if ctx.Current.IsIndoor != cand.IsIndoor {
		return 0.7
	}
	return 0.5
}

// primaryCategory resolves a destination's template category. A raw category
// bucket that already names a template category is taken at face value;
// everything else goes through the classifier.
func primaryCategory(d models.Destination) templates.Category {
	for _, c := range templates.Categories() {
		if strings.EqualFold(d.Category, string(c)) {
			return c
		}
	}
	return templates.Classify(d)
}

// categoryComplementarity penalizes redundancy and rewards curated pairings.
func (e *Engine) categoryComplementarity(ctx Context, cand models.Destination) float64 {
	curCat := primaryCategory(ctx.Current)
	candCat := primaryCategory(cand)

	if candCat == curCat {
		return 0.3
	}
	if e.cfg.Pairs[Pair{curCat, candCat}] {
		return 0.9
	}
	if ctx.Preferences != nil {
		for _, fav := range ctx.Preferences.FavoriteCategories {
			if fav == candCat {
				return 0.8
			}
		}
	}
	if sharesTag(ctx.Current, cand) {
		return 0.6
	}
	return 0.5
}

func sharesTag(a, b models.Destination) bool {
	if a.Subcategory != "" && b.HasTag(a.Subcategory) {
		return true
	}
	for _, t := range a.Subcategories {
		if b.HasTag(t) {
			return true
		}
	}
	return false
}

// weatherFit scores how well the candidate suits current conditions.
// Unknown weather is a flat neutral.
func weatherFit(w *Weather, cand models.Destination) float64 {
	if w == nil {
		return 0.5
	}
	cond := strings.ToLower(w.Condition)
	adverse := strings.Contains(cond, "rain") || strings.Contains(cond, "snow") || strings.Contains(cond, "storm")
	favorable := strings.Contains(cond, "clear") || strings.Contains(cond, "sunny") ||
		strings.Contains(cond, "fair") || strings.Contains(cond, "partly")

	switch {
	case adverse && cand.IsIndoor:
		return 1.0
	case favorable && !cand.IsIndoor:
		return 1.0
	case w.TempF > 80 && hasAnyTag(cand, waterTags):
		return 1.0
	case w.TempF < 40 && hasAnyTag(cand, winterTags):
		return 1.0
	}
	return 0.5
}

var waterTags = []string{"lakes-reservoirs", "hot-springs", "swimming-pools", "splash-pads", "fishing"}
var winterTags = []string{"ski-resorts", "winter-festivals", "holiday-lights"}

func hasAnyTag(d models.Destination, tags []string) bool {
	for _, t := range tags {
		if d.HasTag(t) {
			return true
		}
	}
	return false
}

// preferenceMatch starts neutral and accumulates small bonuses for each
// stated preference the candidate satisfies, capped at 1.0.
func preferenceMatch(p *Preferences, cand models.Destination) float64 {
	if p == nil {
		return 0.5
	}
	score := 0.5
	candCat := primaryCategory(cand)
	for _, fav := range p.FavoriteCategories {
		if fav == candCat {
			score += 0.2
			break
		}
	}
	if p.PreferredDifficulty != "" && strings.EqualFold(p.PreferredDifficulty, cand.DifficultyLevel) {
		score += 0.1
	}
	if p.MaxDriveMinutes > 0 && cand.DriveTime > 0 && cand.DriveTime <= p.MaxDriveMinutes {
		score += 0.1
	}
	if p.WantsFamilyFriendly && cand.FamilyFriendly {
		score += 0.1
	}
	if p.NeedsAccessible && cand.IsAccessible {
		score += 0.1
	}
	return math.Min(score, 1.0)
}

// topFactors returns the two highest raw factor values, compared unweighted.
// Ties resolve in the fixed factor order so output is deterministic.
func topFactors(scores map[Factor]float64) (Factor, Factor) {
	order := []Factor{FactorTime, FactorProximity, FactorCategory, FactorWeather, FactorPreference}
	primary := order[0]
	for _, f := range order {
		if scores[f] > scores[primary] {
			primary = f
		}
	}
	var secondary Factor
	for _, f := range order {
		if f == primary {
			continue
		}
		if secondary == "" || scores[f] > scores[secondary] {
			secondary = f
		}
	}
	return primary, secondary
}

// dayEndHour is when the planning day is considered over for visit-order
// purposes.
const dayEndHour = 20

// suggestedOrder slots the candidate by comparing its duration against the
// minutes left in the day after finishing the current visit.
func suggestedOrder(ctx Context, cand models.Destination) VisitOrder {
	minutesLeft := (dayEndHour-ctx.Now.Hour())*60 - ctx.Now.Minute() - ctx.Current.Duration()
	candDur := cand.Duration()

	switch {
	case minutesLeft >= candDur:
		return OrderAfter
	case candDur <= 90:
		return OrderSameDay
	default:
		return OrderBefore
	}
}

// explain renders the user-facing sentence for a recommendation, keyed by
// the winning factor.
func explain(primary Factor, cur, cand models.Destination, dist float64, order VisitOrder) string {
	var lead string
	switch primary {
	case FactorTime:
		lead = fmt.Sprintf("%s rounds out a day at %s nicely", cand.Name, cur.Name)
	case FactorProximity:
		lead = fmt.Sprintf("%s is only %.1f miles from %s", cand.Name, dist, cur.Name)
	case FactorCategory:
		lead = fmt.Sprintf("%s is a natural change of pace from %s", cand.Name, cur.Name)
	case FactorWeather:
		lead = fmt.Sprintf("%s is a great fit for today's weather", cand.Name)
	default:
		lead = fmt.Sprintf("%s matches your travel preferences", cand.Name)
	}

	switch order {
	case OrderAfter:
		return fmt.Sprintf("%s. About %.1f miles away, with time to visit after.", lead, dist)
	case OrderBefore:
		return fmt.Sprintf("%s. About %.1f miles away, best saved for an earlier start.", lead, dist)
	default:
		return fmt.Sprintf("%s. About %.1f miles away, an easy same-day add.", lead, dist)
	}
}

// matchesCategoryFilters applies the include/exclude category options against
// the candidate's classified category, its raw category bucket, and its
// subcategory tags.
func matchesCategoryFilters(cand models.Destination, opts Options) bool {
	if len(opts.MustIncludeCategories) > 0 && !matchesAny(cand, opts.MustIncludeCategories) {
		return false
	}
	if matchesAny(cand, opts.ExcludeCategories) {
		return false
	}
	return true
}

func matchesAny(cand models.Destination, categories []string) bool {
	candCat := string(primaryCategory(cand))
	for _, c := range categories {
		if c == "" {
			continue
		}
		if strings.EqualFold(c, candCat) || strings.EqualFold(c, cand.Category) || cand.HasTag(strings.ToLower(c)) {
			return true
		}
	}
	return false
}
