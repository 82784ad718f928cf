package outfits

import (
	"sort"
	"strconv"
	"strings"
)

// NoveltyGuard remembers recent outfit signatures. Once it holds more than
// its window it is cleared in bulk and keeps only the newest signature.
type NoveltyGuard struct {
	window int
	recent map[string]struct{}
}

func NewNoveltyGuard(window int) *NoveltyGuard {
	if window <= 0 {
		window = DefaultNoveltyWindow
	}
	return &NoveltyGuard{window: window, recent: make(map[string]struct{}, window+1)}
}

func (g *NoveltyGuard) Seen(signature string) bool {
	_, ok := g.recent[signature]
	return ok
}

func (g *NoveltyGuard) Record(signature string) {
	g.recent[signature] = struct{}{}
	if len(g.recent) > g.window {
		g.recent = map[string]struct{}{signature: {}}
	}
}

func (g *NoveltyGuard) Len() int {
	return len(g.recent)
}

// Signature is the order independent key of an outfit: its product ids with
// each item's category, sorted. Ids missing from index get an empty category.
func Signature(o *Outfit, index map[uint]Item) string {
	parts := make([]string, 0, len(o.ProductIDs))
	for _, id := range o.ProductIDs {
		parts = append(parts, strconv.FormatUint(uint64(id), 10)+":"+strings.ToLower(index[id].Category))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// productSetKey identifies an outfit by its exact product id set.
func productSetKey(ids []uint) string {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func indexItems(items []Item) map[uint]Item {
	index := make(map[uint]Item, len(items))
	for _, item := range items {
		if _, ok := index[item.ID]; !ok {
			index[item.ID] = item
		}
	}
	return index
}
