package models

import "stylistapi/outfits"

type UserAccount struct {
	JsonModel
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"unique"`
	Banned   bool     `gorm:"default:false" json:"-"`
	LastIp   string   `json:"-"`
	Status   string   `json:"-"`
	GoogleID string   `json:"-"`
	AppleID  string   `json:"-"`
	Platform Platform `sql:"type:ENUM('ios', 'android', 'web')" json:"platform"`
	// Notifications settings
	ReceiveNotifications bool   `gorm:"default:true" json:"receive_notifications"`
	AvatarURL            string `json:"avatar_url"`

	StylePreferences []StylePreference `gorm:"foreignKey:UserAccountID" json:"style_preferences"`
	PushTokens       []UserPushToken   `gorm:"foreignKey:UserAccountID" json:"-"`
}

// StylePreference is a stated taste like {style, bohemian, 0.8} or
// {category, jeans, 1}. Weight is kept in [0,1] by the API.
type StylePreference struct {
	JsonModel
	UserAccountID uint        `gorm:"index" json:"-"`
	UserAccount   UserAccount `json:"-"`
	Type          string      `json:"type"`
	Value         string      `json:"value"`
	Weight        float64     `json:"weight"`
}

type UserPushToken struct {
	JsonModel
	UserAccountID uint
	UserAccount   UserAccount `json:"user_account"`
	Platform      Platform    `sql:"type:ENUM('ios', 'android', 'web')" json:"platform"`
	Token         string      `json:"token"`
	Active        bool        `gorm:"default:false" json:"-"`
}

// ToStyleUser is the engine's view of the account. StylePreferences must be
// preloaded.
func (u UserAccount) ToStyleUser() outfits.User {
	prefs := make([]outfits.StylePreference, 0, len(u.StylePreferences))
	for _, p := range u.StylePreferences {
		prefs = append(prefs, outfits.StylePreference{Type: p.Type, Value: p.Value, Weight: p.Weight})
	}
	return outfits.User{ID: u.ID, Preferences: prefs}
}

type StylePreferenceIn struct {
	Type   string  `json:"type" validate:"required,oneof=style category color"`
	Value  string  `json:"value" validate:"required,max=60"`
	Weight float64 `json:"weight" validate:"min=0,max=1"`
}

type StylePreferencesIn struct {
	Preferences []StylePreferenceIn `json:"preferences" validate:"max=30,dive"`
}

type UserPushIn struct {
	Token    string `json:"token" validate:"required,max=400"`
	Platform string `json:"platform" validate:"required,platform"`
}

type UserInfoOut struct {
	Id                   uint                `json:"id"`
	Name                 string              `json:"name"`
	Email                string              `json:"email"`
	AvatarURL            string              `json:"avatar_url"`
	ReceiveNotifications bool                `json:"receive_notifications"`
	Preferences          []StylePreferenceIn `json:"preferences"`
	ClothesCount         int64               `json:"clothes_count"`
	OutfitsCount         int64               `json:"outfits_count"`
}
