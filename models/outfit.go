package models

import (
	"time"

	"stylistapi/outfits"

	"github.com/lib/pq"
)

// Where a stored outfit came from.
const (
	SourceGenerated   = "generated"
	SourceRecommended = "recommended"
	SourceDaily       = "daily"
)

type Outfit struct {
	JsonModel
	UUID         string         `gorm:"uniqueIndex" json:"uuid"`
	Owner        UserAccount    `json:"-"`
	OwnerID      uint           `gorm:"index" json:"-"`
	Name         string         `json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	AIGenerated  bool           `json:"ai_generated"`
	StyleRating  float64        `json:"style_rating"`
	ProductIDs   pq.Int64Array  `gorm:"type:bigint[]" json:"product_ids"`
	Season       string         `json:"season"`
	Occasion     string         `json:"occasion"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	Source       string         `gorm:"index" json:"source"`
	GeneratedAt  time.Time      `json:"generated_at"`
	LastModified time.Time      `json:"last_modified"`
}

// NewOutfitRecord stores an engine outfit as is.
func NewOutfitRecord(o outfits.Outfit, source string) Outfit {
	ids := make(pq.Int64Array, len(o.ProductIDs))
	for i, id := range o.ProductIDs {
		ids[i] = int64(id)
	}
	return Outfit{
		UUID:         o.ID,
		OwnerID:      o.OwnerUserID,
		Name:         o.Name,
		Description:  o.Description,
		AIGenerated:  o.AIGenerated,
		StyleRating:  o.StyleRating,
		ProductIDs:   ids,
		Season:       string(o.Season),
		Occasion:     string(o.Occasion),
		Tags:         pq.StringArray(append([]string(nil), o.Tags...)),
		Source:       source,
		GeneratedAt:  o.CreatedAt,
		LastModified: o.LastModified,
	}
}

func (o Outfit) ToOutfit() outfits.Outfit {
	ids := make([]uint, len(o.ProductIDs))
	for i, id := range o.ProductIDs {
		ids[i] = uint(id)
	}
	return outfits.Outfit{
		ID:           o.UUID,
		OwnerUserID:  o.OwnerID,
		Name:         o.Name,
		Description:  o.Description,
		CreatedAt:    o.GeneratedAt,
		LastModified: o.LastModified,
		AIGenerated:  o.AIGenerated,
		StyleRating:  o.StyleRating,
		ProductIDs:   ids,
		Season:       outfits.Season(o.Season),
		Occasion:     outfits.Occasion(o.Occasion),
		Tags:         append([]string(nil), o.Tags...),
	}
}

type OutfitOut struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	AIGenerated  bool      `json:"ai_generated"`
	StyleRating  float64   `json:"style_rating"`
	ProductIDs   []uint    `json:"product_ids"`
	Season       string    `json:"season"`
	Occasion     string    `json:"occasion"`
	Tags         []string  `json:"tags"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (o Outfit) Out() OutfitOut {
	engine := o.ToOutfit()
	tags := engine.Tags
	if tags == nil {
		tags = []string{}
	}
	return OutfitOut{
		ID:           o.UUID,
		Name:         o.Name,
		Description:  o.Description,
		AIGenerated:  o.AIGenerated,
		StyleRating:  o.StyleRating,
		ProductIDs:   engine.ProductIDs,
		Season:       o.Season,
		Occasion:     o.Occasion,
		Tags:         tags,
		Source:       o.Source,
		CreatedAt:    o.GeneratedAt,
		LastModified: o.LastModified,
	}
}
