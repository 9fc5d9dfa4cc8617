package recommend

// Named presets: fixed parameterizations of Recommend used by the site's
// quick-pick panels. No preset carries any logic of its own.

// LunchBreakOptions keeps it tight and food-focused.
func LunchBreakOptions() Options {
	return Options{
		Limit:                 3,
		MaxDistanceMiles:      5,
		MustIncludeCategories: []string{"food-drink", "quick-escapes"},
	}
}

// EveningOptions favors venues that work after dark.
func EveningOptions() Options {
	return Options{
		Limit:                 3,
		MaxDistanceMiles:      15,
		MustIncludeCategories: []string{"food-drink", "arts-entertainment", "hidden-gems"},
	}
}

// WeekendOptions widens the radius for a full-day plan.
func WeekendOptions() Options {
	return Options{
		Limit:            5,
		MaxDistanceMiles: 120,
	}
}

// FamilyOptions sticks to kid-safe categories.
func FamilyOptions() Options {
	return Options{
		Limit:                 4,
		MaxDistanceMiles:      30,
		MustIncludeCategories: []string{"youth-family", "outdoor-adventure", "quick-escapes"},
	}
}

// PresetOptions resolves a preset by name. The second return is false for an
// unknown name.
func PresetOptions(name string) (Options, bool) {
	switch name {
	case "lunch-break":
		return LunchBreakOptions(), true
	case "evening":
		return EveningOptions(), true
	case "weekend":
		return WeekendOptions(), true
	case "family":
		return FamilyOptions(), true
	}
	return Options{}, false
}
