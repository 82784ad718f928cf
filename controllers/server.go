package controllers

import (
	"net/http"

	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/tasks"

	"github.com/go-playground/validator"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// SetupServer wires routes. enqueuer and gatherer may be nil: refresh then
// answers 503 and /metrics is not mounted.
func SetupServer(
	cfg *config.Config,
	db *gorm.DB,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	sessions services.OutfitSessionProvider,
	enqueuer tasks.Enqueuer,
	gatherer prometheus.Gatherer,
) *echo.Echo {
	e := echo.New()
	v := validator.New()
	v.RegisterValidation("platform", models.ValidatePlatform)
	e.Validator = &CustomValidator{validator: v}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			if enqueuer != nil {
				c.Set("__asynqclient", enqueuer)
			}
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	jwtMiddleware := echojwt.JWT([]byte(cfg.Auth.JWTSecret))

	wardrobeGroup := e.Group("/wardrobe", jwtMiddleware, UserMiddleware)

	clothesController := ClothesController{
		AWSService: awsService,
		URLCache:   urlCache,
		BucketName: cfg.Storage.BucketName,
	}
	clothesController.ClothingRoutes(wardrobeGroup.Group("/clothes"))

	outfitController := OutfitController{
		Sessions:     sessions,
		DefaultCount: cfg.Outfit.RecommendationCount,
	}
	outfitController.OutfitRoutes(wardrobeGroup.Group("/outfits"))

	profileController := ProfileController{}
	profileController.ProfileRoutes(e.Group("/profile", jwtMiddleware, UserMiddleware))

	return e
}
