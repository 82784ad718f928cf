package outfits

// Fallback builds a best-effort outfit of up to four distinct items without
// looking at categories or colors. Items without an id are skipped, and it
// returns nil when fewer than two remain.
func (e *Engine) Fallback(user User, items []Item, season Season) (outfit *Outfit) {
	shuffled := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != 0 {
			shuffled = append(shuffled, item)
		}
	}
	if len(shuffled) < minFallbackItems {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Uint("user_id", user.ID).Msg("[Outfit] fallback failed")
			outfit = nil
		}
	}()

	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	theme := e.randomTheme()
	outfit = e.newOutfit(user, e.generateName(theme, season), season, OccasionForTheme(theme))
	for _, item := range shuffled {
		if len(outfit.ProductIDs) == fallbackItemLimit {
			break
		}
		outfit.AddProduct(item.ID)
	}
	outfit.Description = describe(theme, season, len(outfit.ProductIDs))
	outfit.StyleRating = baseStyleRating
	outfit.AddTag(string(theme))
	outfit.AddTag(string(season))
	return outfit
}
