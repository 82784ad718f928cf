package controllers

import (
	"net/http"
	"testing"

	"stylistapi/models"
	"stylistapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileOk(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")
	test.FakeWardrobe(s.db, user)

	rec := s.do(test.NewJSONAuthRequest("GET", "/profile/me", UIntToStr(user.ID), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode[models.UserInfoOut](t, rec)
	assert.Equal(t, user.Name, payload.Name)
	assert.Equal(t, user.Email, payload.Email)
	assert.Equal(t, int64(4), payload.ClothesCount)
	assert.Zero(t, payload.OutfitsCount)
	assert.Empty(t, payload.Preferences)
}

func TestReplacePreferences(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")
	s.db.Create(&models.StylePreference{UserAccountID: user.ID, Type: "color", Value: "red", Weight: 1})

	body := models.StylePreferencesIn{Preferences: []models.StylePreferenceIn{
		{Type: "style", Value: "Bohemian", Weight: 0.8},
		{Type: "category", Value: "jeans", Weight: 0.5},
	}}
	rec := s.do(test.NewJSONAuthRequest("PUT", "/profile/preferences", UIntToStr(user.ID), body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored []models.StylePreference
	s.db.Where("user_account_id = ?", user.ID).Order("id asc").Find(&stored)
	require.Len(t, stored, 2)
	assert.Equal(t, "bohemian", stored[0].Value)
	assert.Equal(t, "jeans", stored[1].Value)

	rec = s.do(test.NewJSONAuthRequest("GET", "/profile/me", UIntToStr(user.ID), nil))
	assert.Len(t, decode[models.UserInfoOut](t, rec).Preferences, 2)
}

func TestReplacePreferencesValidation(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")

	for _, pref := range []models.StylePreferenceIn{
		{Type: "style", Value: "casual", Weight: 1.5},
		{Type: "style", Value: "casual", Weight: -0.1},
		{Type: "mood", Value: "happy", Weight: 0.5},
		{Type: "color", Value: "", Weight: 0.5},
	} {
		body := models.StylePreferencesIn{Preferences: []models.StylePreferenceIn{pref}}
		rec := s.do(test.NewJSONAuthRequest("PUT", "/profile/preferences", UIntToStr(user.ID), body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%+v", pref)
	}
}

func TestRegisterPushToken(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")

	body := models.UserPushIn{Token: "fresh-token", Platform: "ios"}
	rec := s.do(test.NewJSONAuthRequest("POST", "/profile/push-token", UIntToStr(user.ID), body))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(test.NewJSONAuthRequest("POST", "/profile/push-token", UIntToStr(user.ID), body))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	s.db.Model(&models.UserPushToken{}).Where("user_account_id = ? AND token = ? AND active = ?", user.ID, "fresh-token", true).Count(&count)
	assert.Equal(t, int64(1), count)

	rec = s.do(test.NewJSONAuthRequest("POST", "/profile/push-token", UIntToStr(user.ID), models.UserPushIn{Token: "x", Platform: "windows"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBannedUserIsLocked(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()
	user := test.FakeUser(s.db, "")
	s.db.Model(user).Update("banned", true)

	rec := s.do(test.NewJSONAuthRequest("GET", "/profile/me", UIntToStr(user.ID), nil))
	assert.Equal(t, http.StatusLocked, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("POST", "/wardrobe/outfits/generate", UIntToStr(user.ID), nil))
	assert.Equal(t, http.StatusLocked, rec.Code)
}

func TestUnknownUserIsUnauthorized(t *testing.T) {
	s, cleaner := newTestServer(t)
	defer cleaner()

	rec := s.do(test.NewJSONAuthRequest("GET", "/profile/me", "424242", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
