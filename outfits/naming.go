package outfits

import (
	"fmt"
	"strings"
)

func (e *Engine) generateName(theme Theme, season Season) string {
	adjectives := make([]string, 0, len(genericAdjectives)+len(themeAdjectives[theme]))
	adjectives = append(adjectives, genericAdjectives...)
	adjectives = append(adjectives, themeAdjectives[theme]...)

	adj := adjectives[e.rng.Intn(len(adjectives))]
	template := nameTemplates[e.rng.Intn(len(nameTemplates))]
	return strings.NewReplacer(
		"{adj}", adj,
		"{season}", string(season),
		"{theme}", string(theme),
	).Replace(template)
}

func describe(theme Theme, season Season, count int) string {
	return fmt.Sprintf("A %s outfit for %s with %d pieces from your wardrobe.", strings.ToLower(string(theme)), strings.ToLower(string(season)), count)
}
