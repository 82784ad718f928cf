package outfits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackNeedsTwoItems(t *testing.T) {
	e := testEngine(1)
	assert.Nil(t, e.Fallback(User{ID: 1}, nil, SeasonFall))
	assert.Nil(t, e.Fallback(User{ID: 1}, []Item{{ID: 1}}, SeasonFall))
}

func TestFallbackUsesEverythingWhenSmall(t *testing.T) {
	outfit := testEngine(1).Fallback(User{ID: 3}, []Item{{ID: 1}, {ID: 2}}, SeasonSpring)

	require.NotNil(t, outfit)
	assert.ElementsMatch(t, []uint{1, 2}, outfit.ProductIDs)
	assert.Equal(t, uint(3), outfit.OwnerUserID)
	assert.Equal(t, SeasonSpring, outfit.Season)
	assert.Equal(t, baseStyleRating, outfit.StyleRating)
	assert.True(t, outfit.AIGenerated)
	require.Len(t, outfit.Tags, 2)
	assert.Contains(t, Themes, Theme(outfit.Tags[0]))
	assert.Equal(t, "Spring", outfit.Tags[1])
}

func TestFallbackSkipsItemsWithoutID(t *testing.T) {
	items := []Item{{ID: 0, Name: "ghost"}, {ID: 4}, {ID: 0}, {ID: 7}}
	for seed := int64(1); seed <= 20; seed++ {
		outfit := testEngine(seed).Fallback(User{ID: 1}, items, SeasonFall)
		require.NotNil(t, outfit)
		assert.ElementsMatch(t, []uint{4, 7}, outfit.ProductIDs)
	}
	assert.Nil(t, testEngine(1).Fallback(User{ID: 1}, []Item{{ID: 0}, {ID: 0}, {ID: 3}}, SeasonFall))
}

func TestFallbackCapsAtFourDistinctItems(t *testing.T) {
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{ID: uint(i + 1)}
	}
	for seed := int64(1); seed <= 20; seed++ {
		outfit := testEngine(seed).Fallback(User{ID: 1}, items, SeasonWinter)
		require.NotNil(t, outfit)
		assert.Len(t, outfit.ProductIDs, 4)

		seen := map[uint]bool{}
		for _, id := range outfit.ProductIDs {
			assert.False(t, seen[id], "duplicate id %d", id)
			assert.True(t, id >= 1 && id <= 10)
			seen[id] = true
		}
	}
}

func TestFallbackDeduplicatesIDs(t *testing.T) {
	items := []Item{{ID: 1}, {ID: 1}, {ID: 1}, {ID: 2}}
	outfit := testEngine(6).Fallback(User{ID: 1}, items, SeasonSummer)

	require.NotNil(t, outfit)
	assert.ElementsMatch(t, []uint{1, 2}, outfit.ProductIDs)
}

func TestFallbackDoesNotReorderInput(t *testing.T) {
	items := []Item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	testEngine(8).Fallback(User{ID: 1}, items, SeasonSummer)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, itemIDs(items))
}
