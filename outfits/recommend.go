package outfits

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// compositionsPerResult bounds how many compositions Recommend tries per
// requested outfit.
const compositionsPerResult = 3

// Recommend proposes up to maxCount distinct outfits sorted by descending
// style rating. It ignores themes and works on the five slot partition.
func (e *Engine) Recommend(user User, items []Item, maxCount int) []Outfit {
	if len(items) < 2 || maxCount <= 0 {
		return []Outfit{}
	}
	w := categorizeSimple(items)
	if !w.has(SlotTops) || !w.has(SlotBottoms) {
		e.logger.Debug().Uint("user_id", user.ID).Msg("[Recommend] wardrobe lacks tops or bottoms")
		return []Outfit{}
	}

	seen := make(map[string]struct{}, maxCount)
	results := make([]Outfit, 0, maxCount)
	for attempt := 0; attempt < compositionsPerResult*maxCount && len(results) < maxCount; attempt++ {
		picked := e.compose(w)
		key := productSetKey(itemIDs(picked))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, *e.recommendation(user, picked, len(results)+1))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StyleRating > results[j].StyleRating
	})
	e.recorder.RecommendationsRanked(len(results))
	return results
}

func (e *Engine) compose(w Wardrobe) []Item {
	top := e.pick(w[SlotTops])
	picked := []Item{*top}
	if bottom := e.SelectItem(w, SlotBottoms, top, nil); bottom != nil {
		picked = append(picked, *bottom)
	}
	if shoes := e.SelectItem(w, SlotShoes, top, nil); shoes != nil {
		picked = append(picked, *shoes)
	}
	if w.has(SlotOuterwear) && e.chance(recommendOuterwearChance) {
		if outer := e.SelectItem(w, SlotOuterwear, top, nil); outer != nil {
			picked = append(picked, *outer)
		}
	}
	if w.has(SlotAccessories) && e.chance(recommendAccessoryChance) {
		if acc := e.pick(w[SlotAccessories]); acc != nil {
			picked = append(picked, *acc)
		}
	}
	return picked
}

func (e *Engine) recommendation(user User, picked []Item, rank int) *Outfit {
	season := seasonForCount(len(picked))
	outfit := e.newOutfit(user, fmt.Sprintf("Recommended Look %d", rank), season, OccasionCasual)
	for _, item := range picked {
		outfit.AddProduct(item.ID)
	}
	outfit.Description = fmt.Sprintf("Recommended for you: %d pieces picked for color harmony and your style preferences.", len(outfit.ProductIDs))
	outfit.StyleRating = rate(user, picked)
	outfit.AddTag("Recommended")
	outfit.AddTag(string(season))
	return outfit
}

func seasonForCount(n int) Season {
	switch {
	case n >= 4:
		return SeasonFall
	case n <= 2:
		return SeasonSummer
	default:
		return SeasonAllSeason
	}
}

// rate scores an outfit on [0,5]: a 3.0 base, a bonus when any pair of items
// has complementary colors, and a weighted bonus for every stated preference
// found in an item's category.
func rate(user User, items []Item) float64 {
	score := baseStyleRating
	if hasComplementaryPair(items) {
		score += complementaryBonus
	}
	for _, pref := range user.Preferences {
		value := strings.ToLower(pref.Value)
		if value == "" || math.IsNaN(pref.Weight) || math.IsInf(pref.Weight, 0) {
			continue
		}
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Category), value) {
				score += preferenceMatchFactor * pref.Weight
				break
			}
		}
	}
	return math.Max(minStyleRating, math.Min(maxStyleRating, score))
}

func hasComplementaryPair(items []Item) bool {
	colors := make([]Color, 0, len(items))
	for _, item := range items {
		if c, ok := NormalizeColor(item); ok {
			colors = append(colors, c)
		}
	}
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if complementary(colors[i], colors[j]) {
				return true
			}
		}
	}
	return false
}

func itemIDs(items []Item) []uint {
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
