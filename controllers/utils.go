package controllers

import (
	"net/http"
	"strconv"

	"stylistapi/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func StrPointer(b string) *string {
	return &b
}

func UIntToStr(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

// requestContext pulls the current user and db set by the middlewares.
func requestContext(c echo.Context) (models.UserAccount, *gorm.DB, error) {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return user, nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return user, nil, echo.NewHTTPError(http.StatusInternalServerError, "Database connection error")
	}
	return user, db, nil
}
