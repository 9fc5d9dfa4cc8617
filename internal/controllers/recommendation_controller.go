package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"utah_trips/internal/config"
	"utah_trips/internal/models"
	"utah_trips/internal/recommend"
	"utah_trips/internal/templates"
)

// engine is the shared scoring engine; configuration is immutable so one
// instance serves all requests.
var engine = mustEngine()

func mustEngine() *recommend.Engine {
	e, err := recommend.NewEngine(recommend.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
}

// GetRecommendations scores the catalog against the destination the visitor
// is viewing.
//
// Query parameters: limit, max_distance (miles), include/exclude (comma
// category lists), visited (comma ids), preset
// (lunch-break|evening|weekend|family), condition + temp_f (weather),
// favorites (comma category list), difficulty, max_drive, family, accessible.
// A current destination without coordinates yields an empty list, not an
// error: the site renders an empty panel.
func GetRecommendations(c *gin.Context) {
	current, ok := findDestination(c)
	if !ok {
		return
	}

	candidates, err := fetchCandidates(current)
	if err != nil {
		logrus.WithError(err).Error("GetRecommendations: candidate fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch candidates"})
		return
	}

	serveRecommendations(c, current, candidates)
}

// serveRecommendations builds the scoring context from the query parameters,
// scores the pool, and writes the response. A nil result renders as an empty
// list, never null.
func serveRecommendations(c *gin.Context, current models.Destination, candidates []models.Destination) {
	opts, err := buildOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := recommend.Context{
		Current:        current,
		Now:            time.Now(),
		Preferences:    buildPreferences(c),
		Weather:        buildWeather(c),
		PreviousVisits: parseIDList(c.Query("visited")),
	}

	recs := engine.Recommend(ctx, candidates, opts)
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// fetchCandidates pulls the candidate pool: every destination except the
// current one. The scorer re-validates distance, so this stays a plain query
// rather than a PostGIS radius search until the catalog outgrows it.
func fetchCandidates(current models.Destination) ([]models.Destination, error) {
	var candidates []models.Destination
	err := config.DB.Where("id <> ?", current.ID).Find(&candidates).Error
	return candidates, err
}

func buildOptions(c *gin.Context) (recommend.Options, error) {
	var opts recommend.Options
	if name := c.Query("preset"); name != "" {
		preset, ok := recommend.PresetOptions(name)
		if !ok {
			return opts, &badParamError{"unknown preset: " + name}
		}
		opts = preset
	}

	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			return opts, &badParamError{"invalid limit"}
		}
		opts.Limit = n
	}
	if m := c.Query("max_distance"); m != "" {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil || f <= 0 {
			return opts, &badParamError{"invalid max_distance"}
		}
		opts.MaxDistanceMiles = f
	}
	if inc := c.Query("include"); inc != "" {
		opts.MustIncludeCategories = splitList(inc)
	}
	if exc := c.Query("exclude"); exc != "" {
		opts.ExcludeCategories = splitList(exc)
	}
	return opts, nil
}

func buildPreferences(c *gin.Context) *recommend.Preferences {
	prefs := &recommend.Preferences{}
	set := false

	if fav := c.Query("favorites"); fav != "" {
		for _, f := range splitList(fav) {
			prefs.FavoriteCategories = append(prefs.FavoriteCategories, templates.Category(f))
		}
		set = true
	}
	if d := c.Query("difficulty"); d != "" {
		prefs.PreferredDifficulty = d
		set = true
	}
	if m := c.Query("max_drive"); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			prefs.MaxDriveMinutes = n
			set = true
		}
	}
	if c.Query("family") == "true" {
		prefs.WantsFamilyFriendly = true
		set = true
	}
	if c.Query("accessible") == "true" {
		prefs.NeedsAccessible = true
		set = true
	}

	if !set {
		return nil
	}
	return prefs
}

func buildWeather(c *gin.Context) *recommend.Weather {
	cond := c.Query("condition")
	tempStr := c.Query("temp_f")
	if cond == "" && tempStr == "" {
		return nil
	}
	w := &recommend.Weather{Condition: cond}
	if tempStr != "" {
		if f, err := strconv.ParseFloat(tempStr, 64); err == nil {
			w.TempF = f
		}
	}
	return w
}

func parseIDList(s string) []uint {
	if s == "" {
		return nil
	}
	var ids []uint
	for _, part := range splitList(s) {
		if n, err := strconv.ParseUint(part, 10, 64); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type badParamError struct{ msg string }

func (e *badParamError) Error() string { return e.msg }
