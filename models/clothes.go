package models

import "stylistapi/outfits"

const (
	ClothingInCloset = "in_closet"
	ClothingArchived = "archived"
)

// Clothing is a wardrobe item. Category is free text such as "T-Shirt" or
// "Ankle boots"; the engine works out the slot from it.
type Clothing struct {
	JsonModel
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Subcategory *string     `json:"subcategory"`
	Description *string     `gorm:"type:text" json:"description"`
	Color       *string     `json:"color"`
	Owner       UserAccount `json:"-"`
	OwnerID     uint        `gorm:"index" json:"-"`
	Status      string      `gorm:"default:in_closet" json:"status"`
	// this is file **key** in storage.
	ImageURL *string `json:"image_url"`
}

func (c Clothing) ToItem() outfits.Item {
	return outfits.Item{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Subcategory: deref(c.Subcategory),
		Description: deref(c.Description),
		Color:       deref(c.Color),
	}
}

func ToItems(clothes []Clothing) []outfits.Item {
	items := make([]outfits.Item, len(clothes))
	for i, c := range clothes {
		items[i] = c.ToItem()
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
