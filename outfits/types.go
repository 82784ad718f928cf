package outfits

import "time"

// Item is a wardrobe entry as the engine sees it. Empty strings mean the
// attribute is not set.
type Item struct {
	ID          uint
	Name        string
	Category    string
	Subcategory string
	Description string
	Color       string
}

type StylePreference struct {
	Type   string
	Value  string
	Weight float64
}

type User struct {
	ID          uint
	Preferences []StylePreference
}

type Slot string

const (
	SlotTops        Slot = "Tops"
	SlotBottoms     Slot = "Bottoms"
	SlotDresses     Slot = "Dresses"
	SlotFootwear    Slot = "Footwear"
	SlotOuterwear   Slot = "Outerwear"
	SlotAccessories Slot = "Accessories"

	// SlotShoes is the footwear slot of the simpler partition used by Recommend.
	SlotShoes Slot = "Shoes"
)

// Slots lists the six slots of the themed partition in display order.
var Slots = []Slot{SlotTops, SlotBottoms, SlotDresses, SlotFootwear, SlotOuterwear, SlotAccessories}

// Wardrobe maps a slot to the items assigned to it, in input order.
type Wardrobe map[Slot][]Item

func (w Wardrobe) has(slot Slot) bool {
	return len(w[slot]) > 0
}

type Theme string

const (
	ThemeCasual     Theme = "Casual"
	ThemeFormal     Theme = "Formal"
	ThemeBusiness   Theme = "Business"
	ThemeAthletic   Theme = "Athletic"
	ThemeBohemian   Theme = "Bohemian"
	ThemeVintage    Theme = "Vintage"
	ThemeMinimalist Theme = "Minimalist"
	ThemeStreetwear Theme = "Streetwear"
	ThemePreppy     Theme = "Preppy"
	ThemeEvening    Theme = "Evening"
)

// Themes is the enumeration order used for tie breaking and fallback search.
var Themes = []Theme{
	ThemeCasual, ThemeFormal, ThemeBusiness, ThemeAthletic, ThemeBohemian,
	ThemeVintage, ThemeMinimalist, ThemeStreetwear, ThemePreppy, ThemeEvening,
}

func (t Theme) String() string {
	return string(t)
}

type Season string

const (
	SeasonSpring    Season = "Spring"
	SeasonSummer    Season = "Summer"
	SeasonFall      Season = "Fall"
	SeasonWinter    Season = "Winter"
	SeasonAllSeason Season = "All-Season"
)

// SeasonForMonth maps a calendar month to its season; months outside 3..11 are Winter.
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

type Occasion string

const (
	OccasionCasual Occasion = "Casual"
	OccasionFormal Occasion = "Formal"
	OccasionWork   Occasion = "Work"
	OccasionSport  Occasion = "Sport"
)

// OccasionForTheme derives the occasion an outfit of the given theme is meant for.
func OccasionForTheme(t Theme) Occasion {
	switch t {
	case ThemeFormal, ThemeEvening:
		return OccasionFormal
	case ThemeBusiness, ThemePreppy:
		return OccasionWork
	case ThemeAthletic:
		return OccasionSport
	default:
		return OccasionCasual
	}
}

// Outfit is the aggregate handed to callers. The engine does not touch it
// after returning it.
type Outfit struct {
	ID           string
	OwnerUserID  uint
	Name         string
	Description  string
	CreatedAt    time.Time
	LastModified time.Time
	AIGenerated  bool
	StyleRating  float64
	ProductIDs   []uint
	Season       Season
	Occasion     Occasion
	Tags         []string
}

// AddProduct appends id unless it is already part of the outfit.
func (o *Outfit) AddProduct(id uint) bool {
	for _, existing := range o.ProductIDs {
		if existing == id {
			return false
		}
	}
	o.ProductIDs = append(o.ProductIDs, id)
	return true
}

// AddTag appends tag unless it is empty or already present.
func (o *Outfit) AddTag(tag string) {
	if tag == "" {
		return
	}
	for _, existing := range o.Tags {
		if existing == tag {
			return
		}
	}
	o.Tags = append(o.Tags, tag)
}

// HasProduct reports whether id is part of the outfit.
func (o *Outfit) HasProduct(id uint) bool {
	for _, existing := range o.ProductIDs {
		if existing == id {
			return true
		}
	}
	return false
}
