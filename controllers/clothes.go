package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"sync"
	"time"

	"stylistapi/languageutil"
	"stylistapi/logging"
	"stylistapi/models"
	"stylistapi/outfits"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CreateClothingIn struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,max=60"`
	Subcategory *string `json:"subcategory" validate:"omitempty,max=60"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,max=40"`
	FileName    *string `json:"file_name" validate:"omitempty,max=200"`
}

type ClothingResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Status      string  `json:"status"`
	Uri         *string `json:"uri,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ClothingCreatedResponse struct {
	ClothingResponse ClothingResponse `json:"clothes"`
	FileUploadUrl    string           `json:"file_upload_url,omitempty"`
}

// ClothesListResponse groups the closet the way the outfit engine sees it.
type ClothesListResponse struct {
	Tops        []ClothingResponse `json:"tops"`
	Bottoms     []ClothingResponse `json:"bottoms"`
	Dresses     []ClothingResponse `json:"dresses"`
	Footwear    []ClothingResponse `json:"footwear"`
	Outerwear   []ClothingResponse `json:"outerwear"`
	Accessories []ClothingResponse `json:"accessories"`
}

type ClothesController struct {
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	BucketName string
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.POST("/create", controller.CreateClothing)
	g.GET("/list", controller.ListClothes)
	g.DELETE("/:clothingId", controller.ArchiveClothing)
}

func toClothingResponse(item models.Clothing) ClothingResponse {
	return ClothingResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Subcategory: item.Subcategory,
		Description: item.Description,
		Color:       item.Color,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}

func (controller *ClothesController) CreateClothing(c echo.Context) error {
	var req CreateClothingIn
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

	clothing := models.Clothing{
		Name:        req.Name,
		Category:    languageutil.Label(req.Category),
		Subcategory: languageutil.LabelPtr(req.Subcategory),
		Description: req.Description,
		Color:       req.Color,
		OwnerID:     user.ID,
		Status:      models.ClothingInCloset,
	}

	var uploadUrl string
	if req.FileName != nil && *req.FileName != "" {
		fileKey := fmt.Sprintf("clothes/%d/%d-%s", user.ID, time.Now().UnixMilli(), path.Base(*req.FileName))
		uploadUrl, err = controller.AWSService.PresignLink(c.Request().Context(), controller.BucketName, fileKey)
		if err != nil {
			logging.Error().Err(err).Uint("user_id", user.ID).Msg("[Clothes] unable to presign upload")
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error while creating clothe with attachment"})
		}
		clothing.ImageURL = &fileKey
	}

	if err := db.Create(&clothing).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save clothing"})
	}

	return c.JSON(http.StatusCreated, ClothingCreatedResponse{
		ClothingResponse: toClothingResponse(clothing),
		FileUploadUrl:    uploadUrl,
	})
}

// populatePresignedClothingImages resolves image URLs concurrently. When the
// cache itself fails the storage is asked directly, and an item without a URL
// never fails the request.
func (controller *ClothesController) populatePresignedClothingImages(ctx context.Context, clothes []models.Clothing) map[uint]ClothingResponse {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out = make(map[uint]ClothingResponse, len(clothes))
	)
	for _, clothingItem := range clothes {
		wg.Add(1)
		go func(item models.Clothing) {
			defer wg.Done()
			resp := toClothingResponse(item)
			if item.ImageURL != nil && *item.ImageURL != "" {
				objectKey := *item.ImageURL
				url, err := controller.URLCache.GetReadURL(ctx, objectKey)
				if err != nil {
					logging.Warn().Err(err).Str("object_key", objectKey).Msg("[Clothes] url cache failed, presigning directly")
					sentry.WithScope(func(scope *sentry.Scope) {
						scope.SetTag("failure_type", "cache_system")
						scope.SetExtra("objectKey", objectKey)
						sentry.CaptureException(err)
					})
					url, err = controller.AWSService.GetPresignedR2FileReadURL(ctx, controller.BucketName, objectKey)
					if err != nil {
						sentry.CaptureException(err)
					}
				}
				if url != "" {
					resp.Uri = &url
				}
			}
			mu.Lock()
			out[item.ID] = resp
			mu.Unlock()
		}(clothingItem)
	}
	wg.Wait()
	return out
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	clothes, err := services.LoadWardrobe(c.Request().Context(), db, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}

	responses := controller.populatePresignedClothingImages(c.Request().Context(), clothes)
	wardrobe := outfits.Categorize(models.ToItems(clothes))
	slot := func(s outfits.Slot) []ClothingResponse {
		grouped := make([]ClothingResponse, 0, len(wardrobe[s]))
		for _, item := range wardrobe[s] {
			grouped = append(grouped, responses[item.ID])
		}
		return grouped
	}

	return c.JSON(http.StatusOK, ClothesListResponse{
		Tops:        slot(outfits.SlotTops),
		Bottoms:     slot(outfits.SlotBottoms),
		Dresses:     slot(outfits.SlotDresses),
		Footwear:    slot(outfits.SlotFootwear),
		Outerwear:   slot(outfits.SlotOuterwear),
		Accessories: slot(outfits.SlotAccessories),
	})
}

// ArchiveClothing takes an item out of the closet. Stored outfits keep
// referencing it.
func (controller *ClothesController) ArchiveClothing(c echo.Context) error {
	user, db, err := requestContext(c)
	if err != nil {
		return err
	}
	var clothingId uint
	if err := echo.PathParamsBinder(c).Uint("clothingId", &clothingId).BindError(); err != nil {
		return echo.ErrBadRequest
	}

	var clothing models.Clothing
	result := db.Where("id = ? AND owner_id = ?", clothingId, user.ID).Take(&clothing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Clothing not found"})
	}
	if result.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothing"})
	}
	if err := db.Model(&clothing).Update("status", models.ClothingArchived).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to archive clothing"})
	}
	return c.NoContent(http.StatusNoContent)
}
