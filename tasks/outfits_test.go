package tasks

import (
	"context"
	"errors"
	"testing"

	"stylistapi/dbhelper"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/test"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestHandler(t *testing.T, db *gorm.DB) (*OutfitTaskHandler, *test.NotifierMock) {
	t.Helper()
	cfg := test.TestConfig()
	sessions, err := services.NewOutfitSessionStore(db, cfg.Outfit, nil, zerolog.Nop())
	require.NoError(t, err)
	notifier := &test.NotifierMock{}
	return &OutfitTaskHandler{
		DB:       db,
		Sessions: sessions,
		Notifier: notifier,
		Config:   cfg.Outfit,
		Logger:   zerolog.Nop(),
	}, notifier
}

func TestNewOutfitRecommendationTask(t *testing.T) {
	task, err := NewOutfitRecommendationTask(12, 4)
	require.NoError(t, err)
	assert.Equal(t, TypeOutfitRecommend, task.Type())
	assert.JSONEq(t, `{"user_id":12,"count":4}`, string(task.Payload()))

	assert.Equal(t, TypeOutfitDaily, NewDailyOutfitTask().Type())
}

func TestRecommendTaskRejectsBadPayload(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	err := h.HandleRecommendTask(context.Background(), asynq.NewTask(TypeOutfitRecommend, []byte("{not json")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestRecommendTaskStoresAndNotifies(t *testing.T) {
	test.RequireDatabase(t)
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	defer cleaner()

	user := test.FakeUser(db, "")
	test.FakeWardrobe(db, user)
	h, notifier := newTestHandler(t, db)

	task, err := NewOutfitRecommendationTask(user.ID, 3)
	require.NoError(t, err)
	require.NoError(t, h.HandleRecommendTask(context.Background(), task))

	var stored []models.Outfit
	db.Where("owner_id = ? AND source = ?", user.ID, models.SourceRecommended).Find(&stored)
	assert.NotEmpty(t, stored)
	assert.LessOrEqual(t, len(stored), 3)
	require.Equal(t, 1, notifier.Count())
	assert.Equal(t, user.ID, notifier.Sent[0].UserID)
	assert.Equal(t, "Your new outfit ideas are ready", notifier.Sent[0].Title)
}

func TestRecommendTaskMissingUserSkipsRetry(t *testing.T) {
	test.RequireDatabase(t)
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	defer cleaner()

	h, notifier := newTestHandler(t, db)
	task, err := NewOutfitRecommendationTask(987654, 3)
	require.NoError(t, err)

	err = h.HandleRecommendTask(context.Background(), task)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Zero(t, notifier.Count())
}

func TestDailyTaskOnlyDressesActiveUsers(t *testing.T) {
	test.RequireDatabase(t)
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	defer cleaner()

	active := test.FakeUser(db, "active@example.com")
	test.FakeWardrobe(db, active)
	banned := test.FakeUser(db, "banned@example.com")
	test.FakeWardrobe(db, banned)
	db.Model(banned).Update("banned", true)
	test.FakeUser(db, "empty@example.com")

	h, notifier := newTestHandler(t, db)
	require.NoError(t, h.HandleDailyTask(context.Background(), NewDailyOutfitTask()))

	var daily []models.Outfit
	db.Where("source = ?", models.SourceDaily).Find(&daily)
	require.Len(t, daily, 1)
	assert.Equal(t, active.ID, daily[0].OwnerID)
	require.Equal(t, 1, notifier.Count())
	assert.Equal(t, daily[0].UUID, notifier.Sent[0].Data["outfit_id"])
}

func TestDailyTaskKeepsGoingWhenPushFails(t *testing.T) {
	test.RequireDatabase(t)
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	cleaner()
	defer cleaner()

	first := test.FakeUser(db, "one@example.com")
	test.FakeWardrobe(db, first)
	second := test.FakeUser(db, "two@example.com")
	test.FakeWardrobe(db, second)

	h, notifier := newTestHandler(t, db)
	notifier.Err = errors.New("fcm down")
	require.NoError(t, h.HandleDailyTask(context.Background(), NewDailyOutfitTask()))

	var count int64
	db.Model(&models.Outfit{}).Where("source = ?", models.SourceDaily).Count(&count)
	assert.Equal(t, int64(2), count)
}
