package recommend

import (
	"fmt"

	"utah_trips/internal/templates"
)

// Weights defines the contribution of each factor to the final score.
// The factors themselves return values in [0,1]; with the default weights the
// final score stays in [0,1] as well, though the sum is not required to be
// exactly 1.0.
type Weights struct {
	TimeComplementarity float64 `json:"time_complementarity"`
	Proximity           float64 `json:"proximity"`
	Category            float64 `json:"category"`
	Weather             float64 `json:"weather"`
	Preference          float64 `json:"preference"`
}

// DefaultWeights returns the production factor weights.
func DefaultWeights() Weights {
	return Weights{
		TimeComplementarity: 0.30,
		Proximity:           0.20,
		Category:            0.20,
		Weather:             0.15,
		Preference:          0.15,
	}
}

// Validate rejects negative or all-zero weights.
func (w Weights) Validate() error {
	sum := 0.0
	for name, v := range map[string]float64{
		"time_complementarity": w.TimeComplementarity,
		"proximity":            w.Proximity,
		"category":             w.Category,
		"weather":              w.Weather,
		"preference":           w.Preference,
	} {
		if v < 0 {
			return fmt.Errorf("recommend: weight %s is negative", name)
		}
		sum += v
	}
	if sum == 0 {
		return fmt.Errorf("recommend: all weights are zero")
	}
	return nil
}

// Pair is an unordered pair of template categories.
type Pair struct {
	A, B templates.Category
}

// perfectPairList is the editorial adjacency table of category pairs
// considered complementary on the same trip. It is curated by the content
// team, not derived; change it there, not here.
var perfectPairList = []Pair{
	{templates.OutdoorAdventure, templates.FoodDrink},
	{templates.OutdoorAdventure, templates.QuickEscapes},
	{templates.FoodDrink, templates.ArtsEntertainment},
	{templates.FoodDrink, templates.CulturalHeritage},
	{templates.FoodDrink, templates.YouthFamily},
	{templates.FoodDrink, templates.HiddenGems},
	{templates.FoodDrink, templates.SeasonalEvents},
	{templates.CulturalHeritage, templates.ArtsEntertainment},
	{templates.CulturalHeritage, templates.SeasonalEvents},
	{templates.MovieMedia, templates.HiddenGems},
	{templates.MovieMedia, templates.OutdoorAdventure},
	{templates.QuickEscapes, templates.YouthFamily},
}

// PerfectPairs returns the pair table as a symmetric lookup set.
func PerfectPairs() map[Pair]bool {
	m := make(map[Pair]bool, len(perfectPairList)*2)
	for _, p := range perfectPairList {
		m[p] = true
		m[Pair{p.B, p.A}] = true
	}
	return m
}

// Config bundles the tunables for a scoring engine. Tests override Weights
// without touching the scoring logic.
type Config struct {
	Weights Weights
	// Pairs is the perfect-pair lookup; nil means PerfectPairs().
	Pairs map[Pair]bool
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Pairs:   PerfectPairs(),
	}
}

// Validate checks the weights and that every category in the pair table is a
// known template category.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	known := make(map[templates.Category]bool)
	for _, cat := range templates.Categories() {
		known[cat] = true
	}
	for p := range c.Pairs {
		if !known[p.A] || !known[p.B] {
			return fmt.Errorf("recommend: perfect pair (%s, %s) references unknown category", p.A, p.B)
		}
	}
	return nil
}
