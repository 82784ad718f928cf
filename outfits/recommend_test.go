package outfits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendEmptyCases(t *testing.T) {
	e := testEngine(1)
	cases := map[string]struct {
		items []Item
		count int
	}{
		"single item":   {[]Item{{ID: 1, Category: "Shirt"}}, 3},
		"no bottoms":    {[]Item{{ID: 1, Category: "Shirt"}, {ID: 2, Category: "Sneakers"}}, 3},
		"no tops":       {[]Item{{ID: 1, Category: "Pants"}, {ID: 2, Category: "Sneakers"}}, 3},
		"zero count":    {basicWardrobe(), 0},
		"negative":      {basicWardrobe(), -2},
		"empty wardobe": {nil, 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := e.Recommend(User{ID: 1}, tc.items, tc.count)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestRecommendDistinctSortedAndBounded(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rec := newCountingRecorder()
		e := testEngine(seed, WithRecorder(rec))
		results := e.Recommend(User{ID: 1}, basicWardrobe(), 5)

		require.NotEmpty(t, results)
		assert.LessOrEqual(t, len(results), 5)
		assert.Equal(t, []int{len(results)}, rec.ranked)

		seen := map[string]bool{}
		for i, outfit := range results {
			key := productSetKey(outfit.ProductIDs)
			assert.False(t, seen[key], "seed %d: duplicate %s", seed, key)
			seen[key] = true

			assert.GreaterOrEqual(t, outfit.StyleRating, 0.0)
			assert.LessOrEqual(t, outfit.StyleRating, 5.0)
			assert.Equal(t, OccasionCasual, outfit.Occasion)
			assert.Equal(t, "Recommended", outfit.Tags[0])
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].StyleRating, outfit.StyleRating)
			}
		}
	}
}

func TestRecommendTopAndBottomOnly(t *testing.T) {
	items := []Item{{ID: 1, Category: "Shirt"}, {ID: 2, Category: "Pants"}}
	results := testEngine(3).Recommend(User{ID: 1}, items, 4)

	require.Len(t, results, 1)
	assert.ElementsMatch(t, []uint{1, 2}, results[0].ProductIDs)
	assert.Equal(t, "Recommended Look 1", results[0].Name)
	assert.Equal(t, SeasonSummer, results[0].Season)
	assert.Equal(t, []string{"Recommended", "Summer"}, results[0].Tags)
}

func TestRecommendTreatsDressesAsTops(t *testing.T) {
	items := []Item{{ID: 1, Category: "Dress"}, {ID: 2, Category: "Skirt"}}
	results := testEngine(3).Recommend(User{ID: 1}, items, 2)
	require.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ProductIDs[0])
}

func TestRate(t *testing.T) {
	cases := []struct {
		name  string
		user  User
		items []Item
		want  float64
	}{
		{"base", User{}, []Item{{ID: 1, Category: "Shirt"}}, 3.0},
		{"complementary pair", User{}, []Item{{ID: 1, Color: "red"}, {ID: 2, Color: "green"}}, 3.5},
		{"complementary checked both ways", User{}, []Item{{ID: 1, Color: "cream"}, {ID: 2, Color: "navy"}}, 3.5},
		{"compatible is not complementary", User{}, []Item{{ID: 1, Color: "brown"}, {ID: 2, Color: "beige"}}, 3.0},
		{"preference match", User{Preferences: []StylePreference{{Value: "jean", Weight: 1}}}, []Item{{ID: 1, Category: "Jeans"}}, 3.25},
		{"preference counted once", User{Preferences: []StylePreference{{Value: "shirt", Weight: 2}}}, []Item{{ID: 1, Category: "Shirt"}, {ID: 2, Category: "T-Shirt"}}, 3.5},
		{"preference miss", User{Preferences: []StylePreference{{Value: "boot", Weight: 1}}}, []Item{{ID: 1, Category: "Shirt"}}, 3.0},
		{"clamped high", User{Preferences: []StylePreference{{Value: "shirt", Weight: 100}}}, []Item{{ID: 1, Category: "Shirt"}}, 5.0},
		{"clamped low", User{Preferences: []StylePreference{{Value: "shirt", Weight: -100}}}, []Item{{ID: 1, Category: "Shirt"}}, 0.0},
		{"nan ignored", User{Preferences: []StylePreference{{Value: "shirt", Weight: math.NaN()}}}, []Item{{ID: 1, Category: "Shirt"}}, 3.0},
		{"empty value ignored", User{Preferences: []StylePreference{{Value: "", Weight: 1}}}, []Item{{ID: 1, Category: "Shirt"}}, 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, rate(tc.user, tc.items), 1e-9)
		})
	}
}

func TestSeasonForCount(t *testing.T) {
	assert.Equal(t, SeasonSummer, seasonForCount(1))
	assert.Equal(t, SeasonSummer, seasonForCount(2))
	assert.Equal(t, SeasonAllSeason, seasonForCount(3))
	assert.Equal(t, SeasonFall, seasonForCount(4))
	assert.Equal(t, SeasonFall, seasonForCount(5))
}
