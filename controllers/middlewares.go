package controllers

import (
	"errors"
	"net/http"

	"stylistapi/logging"
	"stylistapi/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserMiddleware loads the token's user with stated preferences as
// "currentUser". Banned accounts get 423.
func UserMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		db := c.Get("__db").(*gorm.DB)
		userRaw := c.Get("user")
		if userRaw == nil {
			return echo.ErrUnauthorized
		}
		user, ok := userRaw.(*jwt.Token)
		if !ok {
			return echo.ErrUnauthorized
		}
		claims, ok := user.Claims.(jwt.MapClaims)
		if !ok {
			return echo.ErrUnauthorized
		}
		userId := claims["sub"]
		if userId == nil || userId == "" {
			logging.Warn().Msg("[Auth] token without subject")
			return echo.ErrUnauthorized
		}

		var currentUser models.UserAccount
		result := db.Preload("StylePreferences").Where("id = ?", userId).Take(&currentUser)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return echo.ErrUnauthorized
		}
		if result.Error != nil {
			logging.Error().Err(result.Error).Msg("[Auth] failed to load user")
			return echo.ErrInternalServerError
		}
		if currentUser.Banned {
			return echo.NewHTTPError(http.StatusLocked)
		}
		c.Set("currentUser", currentUser)
		return next(c)
	}
}
