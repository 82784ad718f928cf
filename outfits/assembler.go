package outfits

import (
	"errors"
	"fmt"
)

// draft accumulates an outfit while it is being assembled. The anchor is the
// first core item and is never replaced.
type draft struct {
	anchor   *Item
	core     []Item
	optional []Item
}

func (d *draft) addCore(item Item) {
	if d.anchor == nil {
		anchor := item
		d.anchor = &anchor
	}
	d.core = append(d.core, item)
}

func (d *draft) addOptional(item Item) {
	d.optional = append(d.optional, item)
}

func (d *draft) items() []Item {
	out := make([]Item, 0, len(d.core)+len(d.optional))
	out = append(out, d.core...)
	return append(out, d.optional...)
}

type assembly struct {
	outfit *Outfit
	theme  Theme
}

// Assemble builds one themed outfit from the user's wardrobe. Duplicates of
// recent outfits are regenerated up to the engine's attempt limit, after
// which the last candidate is accepted. Wardrobes that cannot satisfy any
// theme, and any internal failure, go through Fallback. The result is nil
// only when even Fallback has nothing to offer.
func (e *Engine) Assemble(user User, items []Item) *Outfit {
	index := indexItems(items)
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		result, err := e.assembleOnce(user, items)
		if errors.Is(err, errNoSatisfiableTheme) {
			e.logger.Info().Uint("user_id", user.ID).Int("items", len(items)).Msg("[Outfit] no satisfiable theme, using fallback")
			e.recorder.FallbackUsed("no_satisfiable_theme")
			return e.Fallback(user, items, e.currentSeason())
		}
		if err != nil {
			e.logger.Error().Err(err).Uint("user_id", user.ID).Msg("[Outfit] assembly failed, using fallback")
			e.recorder.AssemblyFailed(err)
			e.recorder.FallbackUsed("assembly_failed")
			return e.Fallback(user, items, e.currentSeason())
		}

		signature := Signature(result.outfit, index)
		if e.guard.Seen(signature) && attempt < e.maxAttempts {
			e.logger.Debug().Str("signature", signature).Int("attempt", attempt).Msg("[Outfit] duplicate outfit, retrying")
			e.recorder.DuplicateRetried()
			continue
		}
		e.guard.Record(signature)
		e.recorder.OutfitAssembled(result.theme)
		return result.outfit
	}
	return nil
}

func (e *Engine) assembleOnce(user User, items []Item) (result assembly, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assemble outfit: recovered: %v", r)
		}
	}()

	for _, item := range items {
		if item.ID == 0 {
			return assembly{}, fmt.Errorf("assemble outfit: item %q: %w", item.Name, ErrMalformedItem)
		}
	}

	w := Categorize(items)
	theme, ok := resolveTheme(e.SelectTheme(user, items), w)
	if !ok {
		return assembly{}, errNoSatisfiableTheme
	}

	d := e.selectCore(w, theme)
	season := e.currentSeason()
	e.selectOptional(d, w, theme, season)

	outfit := e.newOutfit(user, e.generateName(theme, season), season, OccasionForTheme(theme))
	for _, item := range d.items() {
		outfit.AddProduct(item.ID)
	}
	if len(outfit.ProductIDs) == 0 {
		return assembly{}, errEmptyDraft
	}
	outfit.Description = describe(theme, season, len(outfit.ProductIDs))
	outfit.StyleRating = rate(user, d.items())
	outfit.AddTag(string(theme))
	outfit.AddTag(string(season))
	return assembly{outfit: outfit, theme: theme}, nil
}

func (e *Engine) selectCore(w Wardrobe, theme Theme) *draft {
	d := &draft{}
	useDress := w.has(SlotDresses) && (e.chance(dressChance) || !w.has(SlotTops) || !w.has(SlotBottoms))
	if useDress {
		if dress := e.SelectItem(w, SlotDresses, nil, &theme); dress != nil {
			d.addCore(*dress)
		}
	} else {
		if bottom := e.SelectItem(w, SlotBottoms, nil, &theme); bottom != nil {
			d.addCore(*bottom)
		}
		if top := e.SelectItem(w, SlotTops, d.anchor, &theme); top != nil {
			d.addCore(*top)
		}
	}
	if shoes := e.SelectItem(w, SlotFootwear, d.anchor, &theme); shoes != nil {
		d.addCore(*shoes)
	}
	return d
}

func (e *Engine) selectOptional(d *draft, w Wardrobe, theme Theme, season Season) {
	if e.chance(outerwearProbability(season, theme)) {
		if outer := e.SelectItem(w, SlotOuterwear, d.anchor, &theme); outer != nil {
			d.addOptional(*outer)
		}
	}
	if w.has(SlotAccessories) {
		if acc := e.SelectItem(w, SlotAccessories, d.anchor, &theme); acc != nil {
			d.addOptional(*acc)
		}
	}
}

func outerwearProbability(season Season, theme Theme) float64 {
	p, ok := outerwearSeasonProbability[season]
	if !ok {
		p = defaultOuterwearProbability
	}
	if factor, ok := outerwearThemeFactor[theme]; ok {
		p *= factor
	}
	return p
}
