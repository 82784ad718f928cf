package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

var platformPattern = regexp.MustCompile(`^(ios|android|web)$`)

func (p *Platform) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Platform(v)
	case []byte:
		*p = Platform(v)
	}
	return nil
}

func (p Platform) Value() string {
	return string(p)
}

// ValidatePlatform is registered as the "platform" validation tag.
func ValidatePlatform(fl validator.FieldLevel) bool {
	return platformPattern.MatchString(fl.Field().String())
}
