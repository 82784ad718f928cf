package outfits

import "strings"

// Categorize partitions items into the six themed slots. It is pure: the same
// input always yields the same partition and every item lands in exactly one
// slot.
func Categorize(items []Item) Wardrobe {
	w := make(Wardrobe, len(Slots))
	for _, item := range items {
		slot := classify(item)
		w[slot] = append(w[slot], item)
	}
	return w
}

func classify(item Item) Slot {
	category := strings.ToLower(item.Category)
	subcategory := strings.ToLower(item.Subcategory)
	description := strings.ToLower(item.Description)

	if containsAny(dressKeywords, category, subcategory, description) {
		return SlotDresses
	}
	if slot, ok := matchRules(slotRules, category, subcategory); ok {
		return slot
	}
	if slot, ok := matchRules(descriptionRules, description); ok {
		return slot
	}
	return SlotTops
}

// categorizeSimple builds the five slot partition used by Recommend. Unmatched
// items default to Tops.
func categorizeSimple(items []Item) Wardrobe {
	w := make(Wardrobe, len(simpleSlotRules))
	for _, item := range items {
		slot, ok := matchRules(simpleSlotRules, strings.ToLower(item.Category), strings.ToLower(item.Subcategory))
		if !ok {
			slot = SlotTops
		}
		w[slot] = append(w[slot], item)
	}
	return w
}

func matchRules(rules []slotRule, texts ...string) (Slot, bool) {
	for _, rule := range rules {
		if containsAny(rule.keywords, texts...) {
			return rule.slot, true
		}
	}
	return "", false
}

func containsAny(keywords []string, texts ...string) bool {
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}
