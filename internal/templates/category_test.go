package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utah_trips/internal/templates"
)

func TestCategories_NineFixedBuckets(t *testing.T) {
	cats := templates.Categories()
	require.Len(t, cats, 9)

	seen := make(map[templates.Category]bool)
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

func TestValidate_TablesAreExhaustive(t *testing.T) {
	require.NoError(t, templates.Validate())
}

func TestDisplayFor_AllCategories(t *testing.T) {
	for _, c := range templates.Categories() {
		d, ok := templates.DisplayFor(c)
		require.True(t, ok, "no display metadata for %q", c)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Role)
		for _, color := range d.Colors {
			assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, color)
		}
	}
}

func TestDisplayFor_UnknownCategory(t *testing.T) {
	_, ok := templates.DisplayFor(templates.Category("bogus"))
	assert.False(t, ok)
}

func TestTagsFor_VocabularyShape(t *testing.T) {
	total := 0
	for _, c := range templates.Categories() {
		tags := templates.TagsFor(c)
		assert.NotEmpty(t, tags, "category %q has no tag vocabulary", c)
		total += len(tags)
	}
	// The full curator vocabulary sits around 78 tags.
	assert.Greater(t, total, 60)
}
