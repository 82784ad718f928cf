package controllers

import (
	"net/http"

	"stylistapi/languageutil"
	"stylistapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProfileController struct {
}

func preferencesOut(prefs []models.StylePreference) []models.StylePreferenceIn {
	out := make([]models.StylePreferenceIn, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, models.StylePreferenceIn{Type: p.Type, Value: p.Value, Weight: p.Weight})
	}
	return out
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/me", func(c echo.Context) error {
		user, db, err := requestContext(c)
		if err != nil {
			return err
		}
		var clothesCount, outfitsCount int64
		db.Model(&models.Clothing{}).Where("owner_id = ? AND status = ?", user.ID, models.ClothingInCloset).Count(&clothesCount)
		db.Model(&models.Outfit{}).Where("owner_id = ?", user.ID).Count(&outfitsCount)

		return c.JSON(http.StatusOK, models.UserInfoOut{
			Id:                   user.ID,
			Name:                 user.Name,
			Email:                user.Email,
			AvatarURL:            user.AvatarURL,
			ReceiveNotifications: user.ReceiveNotifications,
			Preferences:          preferencesOut(user.StylePreferences),
			ClothesCount:         clothesCount,
			OutfitsCount:         outfitsCount,
		})
	})

	// Stated preferences are replaced as a whole.
	g.PUT("/preferences", func(c echo.Context) error {
		var req models.StylePreferencesIn
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		user, db, err := requestContext(c)
		if err != nil {
			return err
		}

		prefs := make([]models.StylePreference, 0, len(req.Preferences))
		for _, p := range req.Preferences {
			prefs = append(prefs, models.StylePreference{
				UserAccountID: user.ID,
				Type:          p.Type,
				Value:         languageutil.Lower(p.Value),
				Weight:        p.Weight,
			})
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_account_id = ?", user.ID).Delete(&models.StylePreference{}).Error; err != nil {
				return err
			}
			if len(prefs) == 0 {
				return nil
			}
			return tx.Create(&prefs).Error
		})
		if err != nil {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save preferences"})
		}
		return c.JSON(http.StatusOK, echo.Map{"preferences": preferencesOut(prefs)})
	})

	g.POST("/push-token", func(c echo.Context) error {
		var req models.UserPushIn
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		user, db, err := requestContext(c)
		if err != nil {
			return err
		}

		var token models.UserPushToken
		result := db.Where("user_account_id = ? AND token = ?", user.ID, req.Token).Limit(1).Find(&token)
		if result.Error != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save push token"})
		}
		token.UserAccountID = user.ID
		token.Token = req.Token
		token.Platform = models.Platform(req.Platform)
		token.Active = true
		if err := db.Save(&token).Error; err != nil {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save push token"})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
