package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utah_trips/internal/recommend"
	"utah_trips/internal/templates"
)

func TestDefaultWeights(t *testing.T) {
	w := recommend.DefaultWeights()
	require.NoError(t, w.Validate())

	sum := w.TimeComplementarity + w.Proximity + w.Category + w.Weather + w.Preference
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, 0.30, w.TimeComplementarity)
	assert.Equal(t, 0.20, w.Proximity)
	assert.Equal(t, 0.20, w.Category)
	assert.Equal(t, 0.15, w.Weather)
	assert.Equal(t, 0.15, w.Preference)
}

func TestWeights_Validate(t *testing.T) {
	bad := recommend.Weights{Proximity: -0.1}
	assert.Error(t, bad.Validate())

	zero := recommend.Weights{}
	assert.Error(t, zero.Validate())
}

func TestPerfectPairs_Symmetric(t *testing.T) {
	// The lookup is built from an unordered list; both orientations of every
	// pair must resolve, which NewEngine relies on.
	pairs := recommend.PerfectPairs()
	require.NotEmpty(t, pairs)
	for p := range pairs {
		assert.True(t, pairs[recommend.Pair{A: p.B, B: p.A}], "pair (%s, %s) missing its reverse", p.A, p.B)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, recommend.DefaultConfig().Validate())
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	_, err := recommend.NewEngine(recommend.Config{
		Weights: recommend.Weights{Proximity: -1},
	})
	assert.Error(t, err)
}

func TestNewEngine_DefaultsNilPairTable(t *testing.T) {
	e, err := recommend.NewEngine(recommend.Config{Weights: recommend.DefaultWeights()})
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestPresetOptions(t *testing.T) {
	tests := []struct {
		name        string
		wantLimit   int
		wantMaxDist float64
	}{
		{"lunch-break", 3, 5},
		{"evening", 3, 15},
		{"weekend", 5, 120},
		{"family", 4, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, ok := recommend.PresetOptions(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantMaxDist, opts.MaxDistanceMiles)
		})
	}

	_, ok := recommend.PresetOptions("brunch")
	assert.False(t, ok)
}

func TestPresetCategories_AreKnown(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range templates.Categories() {
		known[string(c)] = true
	}
	for _, name := range []string{"lunch-break", "evening", "weekend", "family"} {
		opts, ok := recommend.PresetOptions(name)
		require.True(t, ok)
		for _, c := range append(opts.MustIncludeCategories, opts.ExcludeCategories...) {
			assert.True(t, known[c], "preset %s references unknown category %q", name, c)
		}
	}
}
