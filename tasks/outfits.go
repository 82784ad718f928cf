package tasks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	TypeOutfitRecommend = "outfit:recommend"
	TypeOutfitDaily     = "outfit:daily"

	QueueOutfits = "outfits"
)

// dailyBatchSize is how many users the daily job loads at a time.
const dailyBatchSize = 100

// Enqueuer is the part of *asynq.Client the API uses.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type OutfitRecommendationPayload struct {
	UserID uint `json:"user_id"`
	Count  int  `json:"count"`
}

func NewOutfitRecommendationTask(userID uint, count int) (*asynq.Task, error) {
	payload, err := json.Marshal(OutfitRecommendationPayload{UserID: userID, Count: count})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOutfitRecommend, payload, asynq.Queue(QueueOutfits), asynq.MaxRetry(3)), nil
}

func NewDailyOutfitTask() *asynq.Task {
	return asynq.NewTask(TypeOutfitDaily, nil, asynq.Queue(QueueOutfits), asynq.MaxRetry(1))
}

type OutfitTaskHandler struct {
	DB       *gorm.DB
	Sessions services.OutfitSessionProvider
	Notifier services.NotificationProvider
	Config   config.OutfitConfig
	Logger   zerolog.Logger
}

func (h *OutfitTaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeOutfitRecommend, h.HandleRecommendTask)
	mux.HandleFunc(TypeOutfitDaily, h.HandleDailyTask)
}

// HandleRecommendTask ranks fresh recommendations for one user, stores them
// and lets the user know.
func (h *OutfitTaskHandler) HandleRecommendTask(ctx context.Context, t *asynq.Task) error {
	var payload OutfitRecommendationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", TypeOutfitRecommend, err, asynq.SkipRetry)
	}
	logger := h.Logger.With().Uint("user_id", payload.UserID).Logger()
	logger.Info().Int("count", payload.Count).Msg("[Queue] Recommend outfits")

	user, err := services.LoadStyleUser(ctx, h.DB, payload.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %d is gone: %w", payload.UserID, asynq.SkipRetry)
	}
	if err != nil {
		sentry.CaptureException(err)
		return err
	}

	count := payload.Count
	if count < 1 || count > 20 {
		count = h.Config.RecommendationCount
	}
	recommended, err := services.RecommendOutfits(ctx, h.DB, h.Sessions, user, count)
	if err != nil {
		sentry.CaptureException(err)
		return err
	}
	if len(recommended) == 0 {
		logger.Info().Msg("[Queue] Wardrobe too small for recommendations")
		return nil
	}
	if _, err := services.SaveOutfits(ctx, h.DB, models.SourceRecommended, recommended); err != nil {
		sentry.CaptureException(err)
		return err
	}

	err = h.Notifier.Notify(ctx, user.ID, "Your new outfit ideas are ready",
		fmt.Sprintf("We put together %d looks from your wardrobe.", len(recommended)),
		map[string]string{"type": TypeOutfitRecommend, "count": strconv.Itoa(len(recommended))})
	if err != nil {
		// The outfits are stored, a retry would only duplicate them.
		logger.Warn().Err(err).Msg("[Queue] Recommendation push failed")
		sentry.CaptureException(err)
	}
	logger.Info().Int("stored", len(recommended)).Msg("[Queue] Recommendations stored")
	return nil
}

// HandleDailyTask builds the outfit of the day for every active user. One
// user failing never stops the others.
func (h *OutfitTaskHandler) HandleDailyTask(ctx context.Context, t *asynq.Task) error {
	var users []models.UserAccount
	generated, skipped, failed := 0, 0, 0

	result := h.DB.WithContext(ctx).
		Preload("StylePreferences").
		Where("banned = ?", false).
		FindInBatches(&users, dailyBatchSize, func(tx *gorm.DB, batch int) error {
			for _, user := range users {
				switch err := h.dailyOutfit(ctx, user); {
				case err == nil:
					generated++
				case errors.Is(err, services.ErrNoOutfit):
					skipped++
				default:
					failed++
					h.Logger.Error().Err(err).Uint("user_id", user.ID).Msg("[Queue] Daily outfit failed")
					sentry.CaptureException(err)
				}
			}
			return ctx.Err()
		})
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return result.Error
	}
	h.Logger.Info().Int("generated", generated).Int("skipped", skipped).Int("failed", failed).Msg("[Queue] Daily outfits done")
	return nil
}

func (h *OutfitTaskHandler) dailyOutfit(ctx context.Context, user models.UserAccount) error {
	outfit, err := services.GenerateOutfit(ctx, h.DB, h.Sessions, user, models.SourceDaily)
	if err != nil {
		return err
	}
	return h.Notifier.Notify(ctx, user.ID, "Your outfit of the day", outfit.Name,
		map[string]string{"type": TypeOutfitDaily, "outfit_id": outfit.UUID})
}
