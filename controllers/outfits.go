package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"stylistapi/logging"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const maxRecommendationCount = 20

type OutfitsListResponse struct {
	Outfits []models.OutfitOut `json:"outfits"`
}

type RefreshQueuedResponse struct {
	TaskID string `json:"task_id"`
	Count  int    `json:"count"`
}

type OutfitController struct {
	Sessions     services.OutfitSessionProvider
	DefaultCount int
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateOutfit)
	g.GET("/recommendations", controller.Recommendations)
	g.POST("/recommendations/refresh", controller.RefreshRecommendations)
	g.GET("/list", controller.ListOutfits)
	g.GET("/:outfitId", controller.GetOutfit)
	g.DELETE("/:outfitId", controller.DeleteOutfit)
}

// recommendationCount reads ?count, falling back to the configured default.
func (controller *OutfitController) recommendationCount(c echo.Context) (int, bool) {
	raw := c.QueryParam("count")
	if raw == "" {
		return controller.DefaultCount, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > maxRecommendationCount {
		return 0, false
	}
	return count, true
}

func (controller *OutfitController) GenerateOutfit(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	outfit, err := services.GenerateOutfit(c.Request().Context(), db, controller.Sessions, user, models.SourceGenerated)
	if errors.Is(err, services.ErrNoOutfit) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Add a few more clothes to get an outfit"})
	}
	if err != nil {
		logging.Error().Err(err).Uint("user_id", user.ID).Msg("[Outfit] generation failed")
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate outfit"})
	}
	return c.JSON(http.StatusCreated, outfit.Out())
}

// Recommendations are computed on the fly and not stored.
func (controller *OutfitController) Recommendations(c echo.Context) error {
	count, ok := controller.recommendationCount(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "count must be between 1 and 20"})
	}
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	recommended, err := services.RecommendOutfits(c.Request().Context(), db, controller.Sessions, user, count)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to recommend outfits"})
	}

	out := make([]models.OutfitOut, 0, len(recommended))
	for _, o := range recommended {
		out = append(out, models.NewOutfitRecord(o, models.SourceRecommended).Out())
	}
	return c.JSON(http.StatusOK, OutfitsListResponse{Outfits: out})
}

func (controller *OutfitController) RefreshRecommendations(c echo.Context) error {
	count, ok := controller.recommendationCount(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "count must be between 1 and 20"})
	}
	user, _, err := requestContext(c)
	if err != nil {
		return err
	}
	asynqClient, ok := c.Get("__asynqclient").(tasks.Enqueuer)
	if !ok {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"message": "Service is not available, please try again a bit later"})
	}

	task, err := tasks.NewOutfitRecommendationTask(user.ID, count)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Sorry, could not refresh outfits, please try again"})
	}
	info, err := asynqClient.Enqueue(task)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Sorry, could not refresh outfits, please try again"})
	}
	logging.Info().Uint("user_id", user.ID).Str("task_id", info.ID).Msg("[Queue] Recommendation refresh submitted")
	return c.JSON(http.StatusAccepted, RefreshQueuedResponse{TaskID: info.ID, Count: count})
}

func (controller *OutfitController) ListOutfits(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	query := db.Where("owner_id = ?", user.ID)
	if source := c.QueryParam("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var records []models.Outfit
	if err := query.Order("generated_at desc").Limit(100).Find(&records).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfits"})
	}
	out := make([]models.OutfitOut, 0, len(records))
	for _, record := range records {
		out = append(out, record.Out())
	}
	return c.JSON(http.StatusOK, OutfitsListResponse{Outfits: out})
}

func findOwnedOutfit(db *gorm.DB, user models.UserAccount, uuid string) (models.Outfit, error) {
	var record models.Outfit
	err := db.Where("uuid = ? AND owner_id = ?", uuid, user.ID).Take(&record).Error
	return record, err
}

func (controller *OutfitController) GetOutfit(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	record, err := findOwnedOutfit(db, user, c.Param("outfitId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Outfit not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfit"})
	}
	return c.JSON(http.StatusOK, record.Out())
}

func (controller *OutfitController) DeleteOutfit(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	record, err := findOwnedOutfit(db, user, c.Param("outfitId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Outfit not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfit"})
	}
	if err := db.Delete(&record).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete outfit"})
	}
	return c.NoContent(http.StatusNoContent)
}
