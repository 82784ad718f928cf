package models

import (
	"testing"
	"time"

	"stylistapi/outfits"

	"github.com/stretchr/testify/assert"
)

func TestClothingToItem(t *testing.T) {
	color := "navy"
	c := Clothing{JsonModel: JsonModel{ID: 7}, Name: "Chinos", Category: "Pants", Color: &color}

	item := c.ToItem()

	assert.Equal(t, outfits.Item{ID: 7, Name: "Chinos", Category: "Pants", Color: "navy"}, item)
	assert.Len(t, ToItems([]Clothing{c, c}), 2)
}

func TestUserToStyleUser(t *testing.T) {
	u := UserAccount{JsonModel: JsonModel{ID: 3}, StylePreferences: []StylePreference{
		{Type: "style", Value: "bohemian", Weight: 0.8},
	}}

	got := u.ToStyleUser()

	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, []outfits.StylePreference{{Type: "style", Value: "bohemian", Weight: 0.8}}, got.Preferences)
	assert.NotNil(t, UserAccount{}.ToStyleUser().Preferences)
}

func TestOutfitRecordRoundTrip(t *testing.T) {
	at := time.Date(2026, time.October, 14, 7, 0, 0, 0, time.UTC)
	o := outfits.Outfit{
		ID: "a1", OwnerUserID: 2, Name: "Fall Casual Ensemble", Description: "desc",
		CreatedAt: at, LastModified: at, AIGenerated: true, StyleRating: 3.5,
		ProductIDs: []uint{4, 1, 9}, Season: outfits.SeasonFall, Occasion: outfits.OccasionCasual,
		Tags: []string{"Casual", "Fall"},
	}

	record := NewOutfitRecord(o, SourceDaily)

	assert.Equal(t, SourceDaily, record.Source)
	assert.Equal(t, []int64{4, 1, 9}, []int64(record.ProductIDs))
	assert.Equal(t, o, record.ToOutfit())

	out := record.Out()
	assert.Equal(t, "a1", out.ID)
	assert.Equal(t, []uint{4, 1, 9}, out.ProductIDs)
	assert.Equal(t, at, out.CreatedAt)
}

func TestOutfitOutHasNoNilTags(t *testing.T) {
	assert.NotNil(t, Outfit{}.Out().Tags)
}
