package services

import (
	"context"
	"errors"
	"fmt"

	"stylistapi/models"
	"stylistapi/outfits"

	"gorm.io/gorm"
)

// LoadWardrobe returns the clothes a user still has in the closet, oldest
// first so categorization order is stable between calls.
func LoadWardrobe(ctx context.Context, db *gorm.DB, userID uint) ([]models.Clothing, error) {
	var clothes []models.Clothing
	err := db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", userID, models.ClothingInCloset).
		Order("id asc").
		Find(&clothes).Error
	if err != nil {
		return nil, fmt.Errorf("load wardrobe of user %d: %w", userID, err)
	}
	return clothes, nil
}

func LoadStyleUser(ctx context.Context, db *gorm.DB, userID uint) (models.UserAccount, error) {
	var user models.UserAccount
	err := db.WithContext(ctx).Preload("StylePreferences").First(&user, userID).Error
	if err != nil {
		return user, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

// SaveOutfits persists engine outfits in one transaction.
func SaveOutfits(ctx context.Context, db *gorm.DB, source string, generated []outfits.Outfit) ([]models.Outfit, error) {
	records := make([]models.Outfit, 0, len(generated))
	for _, o := range generated {
		records = append(records, models.NewOutfitRecord(o, source))
	}
	if len(records) == 0 {
		return records, nil
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save %d %s outfits: %w", len(records), source, err)
	}
	return records, nil
}

// RecentOutfits returns the newest stored outfits from any of sources.
func RecentOutfits(ctx context.Context, db *gorm.DB, userID uint, limit int, sources ...string) ([]models.Outfit, error) {
	var records []models.Outfit
	err := db.WithContext(ctx).
		Where("owner_id = ? AND source IN ?", userID, sources).
		Order("generated_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load recent outfits of user %d: %w", userID, err)
	}
	return records, nil
}

var ErrNoOutfit = errors.New("no outfit could be generated from this wardrobe")

// GenerateOutfit assembles one outfit on the user's session engine and stores
// it under source.
func GenerateOutfit(ctx context.Context, db *gorm.DB, sessions OutfitSessionProvider, user models.UserAccount, source string) (*models.Outfit, error) {
	clothes, err := LoadWardrobe(ctx, db, user.ID)
	if err != nil {
		return nil, err
	}
	session, err := sessions.Session(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var outfit *outfits.Outfit
	session.Do(func(e *outfits.Engine) {
		outfit = e.Assemble(user.ToStyleUser(), models.ToItems(clothes))
	})
	if outfit == nil {
		return nil, ErrNoOutfit
	}

	saved, err := SaveOutfits(ctx, db, source, []outfits.Outfit{*outfit})
	if err != nil {
		return nil, err
	}
	return &saved[0], nil
}

// RecommendOutfits ranks up to count outfits without storing them.
func RecommendOutfits(ctx context.Context, db *gorm.DB, sessions OutfitSessionProvider, user models.UserAccount, count int) ([]outfits.Outfit, error) {
	clothes, err := LoadWardrobe(ctx, db, user.ID)
	if err != nil {
		return nil, err
	}
	session, err := sessions.Session(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var recommended []outfits.Outfit
	session.Do(func(e *outfits.Engine) {
		recommended = e.Recommend(user.ToStyleUser(), models.ToItems(clothes), count)
	})
	return recommended, nil
}
