package outfits

import (
	"strings"
	"unicode"
)

// NormalizeColor maps an item to a canonical color. The explicit color field
// is matched by substring ("charcoal grey" is Gray); description and name are
// searched for whole color words so that "tailored" does not read as red.
func NormalizeColor(item Item) (Color, bool) {
	if c, ok := matchColorField(item.Color); ok {
		return c, true
	}
	for _, text := range []string{item.Description, item.Name} {
		if c, ok := matchColorWords(text); ok {
			return c, true
		}
	}
	return "", false
}

func matchColorField(text string) (Color, bool) {
	if text == "" {
		return "", false
	}
	text = strings.ToLower(text)
	for _, rule := range colorRules {
		for _, alias := range rule.aliases {
			if strings.Contains(text, alias) {
				return rule.color, true
			}
		}
	}
	return "", false
}

func matchColorWords(text string) (Color, bool) {
	if text == "" {
		return "", false
	}
	var words []string
	for _, token := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	}) {
		words = append(words, token)
		// "navy-blue" also offers navy and blue; rule order picks the winner.
		if strings.Contains(token, "-") {
			words = append(words, strings.Split(token, "-")...)
		}
	}
	for _, rule := range colorRules {
		for _, alias := range rule.aliases {
			for _, word := range words {
				if word == alias {
					return rule.color, true
				}
			}
		}
	}
	return "", false
}

// goesWith reports whether candidate is listed in anchor's compatibility row.
// Only the anchor's row is consulted.
func goesWith(anchor, candidate Color) bool {
	return colorIn(colorCompatibility[anchor], candidate)
}

func complementary(a, b Color) bool {
	return colorIn(complementaryColors[a], b) || colorIn(complementaryColors[b], a)
}

func colorIn(list []Color, c Color) bool {
	for _, entry := range list {
		if entry == c {
			return true
		}
	}
	return false
}
