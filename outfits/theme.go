package outfits

import (
	"math"
	"strings"
)

// themeScores counts keyword hits per theme across the wardrobe and the
// user's stated preferences.
func themeScores(user User, items []Item) map[Theme]int {
	scores := make(map[Theme]int, len(Themes))
	for _, item := range items {
		text := strings.ToLower(item.Category + " " + item.Description)
		for _, theme := range Themes {
			scores[theme] += strings.Count(text, strings.ToLower(string(theme)))
		}
		for _, syn := range themeSynonyms {
			for _, kw := range syn.keywords {
				if !strings.Contains(text, kw) {
					continue
				}
				for _, theme := range syn.themes {
					scores[theme]++
				}
			}
		}
	}
	for _, pref := range user.Preferences {
		value := strings.ToLower(pref.Value)
		if value == "" || math.IsNaN(pref.Weight) {
			continue
		}
		weight := math.Max(0, math.Min(1, pref.Weight))
		for _, theme := range Themes {
			if strings.Contains(value, strings.ToLower(string(theme))) {
				scores[theme] += int(math.Round(weight * preferenceThemePoints))
			}
		}
	}
	return scores
}

// SelectTheme picks the theme with the most keyword hits, ties going to the
// earlier theme. A weak signal (max at or below 3) yields a random theme.
func (e *Engine) SelectTheme(user User, items []Item) Theme {
	scores := themeScores(user, items)
	best, bestScore := Themes[0], -1
	for _, theme := range Themes {
		if scores[theme] > bestScore {
			best, bestScore = theme, scores[theme]
		}
	}
	if bestScore <= weakThemeSignal {
		random := e.randomTheme()
		e.logger.Debug().Int("score", bestScore).Str("theme", string(random)).Msg("weak theme signal, picked random theme")
		return random
	}
	return best
}

func (e *Engine) randomTheme() Theme {
	return Themes[e.rng.Intn(len(Themes))]
}

// satisfiable reports whether w can fill the theme's required slots. A dress
// stands in for both Tops and Bottoms.
func satisfiable(theme Theme, w Wardrobe) bool {
	rule, ok := themeRules[theme]
	if !ok {
		return false
	}
	hasDress := w.has(SlotDresses)
	for _, slot := range rule.required {
		if w.has(slot) {
			continue
		}
		if hasDress && (slot == SlotTops || slot == SlotBottoms) {
			continue
		}
		return false
	}
	return true
}

// resolveTheme keeps the preferred theme when possible, otherwise returns the
// first satisfiable theme in enumeration order.
func resolveTheme(preferred Theme, w Wardrobe) (Theme, bool) {
	if satisfiable(preferred, w) {
		return preferred, true
	}
	for _, theme := range Themes {
		if satisfiable(theme, w) {
			return theme, true
		}
	}
	return "", false
}
