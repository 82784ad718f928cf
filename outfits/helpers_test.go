package outfits

import (
	"fmt"
	"time"
)

type countingRecorder struct {
	assembled  map[Theme]int
	fallbacks  map[string]int
	duplicates int
	failures   []error
	ranked     []int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{assembled: map[Theme]int{}, fallbacks: map[string]int{}}
}

func (r *countingRecorder) OutfitAssembled(theme Theme)     { r.assembled[theme]++ }
func (r *countingRecorder) FallbackUsed(reason string)      { r.fallbacks[reason]++ }
func (r *countingRecorder) DuplicateRetried()               { r.duplicates++ }
func (r *countingRecorder) AssemblyFailed(err error)        { r.failures = append(r.failures, err) }
func (r *countingRecorder) RecommendationsRanked(count int) { r.ranked = append(r.ranked, count) }

func clockAt(month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2026, month, 14, 9, 0, 0, 0, time.UTC)
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("outfit-%d", n)
	}
}

func testEngine(seed int64, opts ...Option) *Engine {
	base := []Option{WithSeed(seed), WithClock(clockAt(time.October)), WithIDGenerator(sequentialIDs())}
	return New(append(base, opts...)...)
}

func basicWardrobe() []Item {
	return []Item{
		{ID: 1, Name: "Oxford", Category: "Shirt", Color: "white"},
		{ID: 2, Name: "Tee", Category: "T-Shirt", Color: "black"},
		{ID: 3, Name: "Chinos", Category: "Pants", Color: "beige"},
		{ID: 4, Name: "Denim", Category: "Jeans", Color: "blue"},
		{ID: 5, Name: "Runners", Category: "Sneakers", Color: "white"},
		{ID: 6, Name: "Chelsea", Category: "Boots", Color: "brown"},
		{ID: 7, Name: "Bomber", Category: "Jacket", Color: "olive"},
		{ID: 8, Name: "Leather belt", Category: "Belt", Color: "brown"},
		{ID: 9, Name: "Slip", Category: "Dress", Color: "navy"},
	}
}

func slotOf(w Wardrobe, id uint) Slot {
	for slot, items := range w {
		for _, item := range items {
			if item.ID == id {
				return slot
			}
		}
	}
	return ""
}
