package outfits

import "strings"

// SelectItem picks one item from slot. Without an anchor the pick is uniform.
// With an anchor the preference order is: items matching both the theme and
// the anchor's color table, items matching the theme, any item in the slot.
// A nil theme disables the theme filter. The result is always an element of
// w[slot], or nil when the slot is empty.
func (e *Engine) SelectItem(w Wardrobe, slot Slot, anchor *Item, theme *Theme) *Item {
	candidates := w[slot]
	if len(candidates) == 0 {
		return nil
	}
	if anchor == nil {
		return e.pick(candidates)
	}

	var styleMatches []Item
	if theme != nil {
		styleMatches = matchingTheme(candidates, *theme)
	}

	if anchorColor, ok := NormalizeColor(*anchor); ok {
		if _, known := colorCompatibility[anchorColor]; known {
			pool := candidates
			if len(styleMatches) > 0 {
				pool = styleMatches
			}
			if matches := compatibleWith(pool, anchorColor); len(matches) > 0 {
				return e.pick(matches)
			}
		}
	}
	if len(styleMatches) > 0 {
		return e.pick(styleMatches)
	}
	return e.pick(candidates)
}

func matchingTheme(items []Item, theme Theme) []Item {
	name := strings.ToLower(string(theme))
	var out []Item
	for _, item := range items {
		text := strings.ToLower(item.Category + " " + item.Description)
		if strings.Contains(text, name) {
			out = append(out, item)
		}
	}
	return out
}

func compatibleWith(items []Item, anchor Color) []Item {
	var out []Item
	for _, item := range items {
		if c, ok := NormalizeColor(item); ok && goesWith(anchor, c) {
			out = append(out, item)
		}
	}
	return out
}
