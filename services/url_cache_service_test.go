package services

import (
	"context"
	"testing"

	"stylistapi/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct{}

func (fakePresigner) InitPresignClient(ctx context.Context) error { return nil }

func (fakePresigner) PresignLink(ctx context.Context, bucketName, fileName string) (string, error) {
	return "https://upload.example.com/" + bucketName + "/" + fileName, nil
}

func (fakePresigner) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	return "https://read.example.com/" + bucketName + "/" + fileKey, nil
}

func TestURLCacheLoadsOnMiss(t *testing.T) {
	urlCache, err := NewURLCacheService(fakePresigner{}, "closet", zerolog.Nop())
	require.NoError(t, err)

	url, err := urlCache.GetReadURL(context.Background(), "clothes/1/shirt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://read.example.com/closet/clothes/1/shirt.jpg", url)

	url, err = urlCache.GetReadURL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestPresignRequiresClient(t *testing.T) {
	aws := NewAWSService(config.StorageConfig{BucketName: "closet", AccountID: "acc"})
	_, err := aws.PresignLink(context.Background(), "closet", "a.jpg")
	assert.ErrorIs(t, err, errPresignNotInitialized)
	_, err = aws.GetPresignedR2FileReadURL(context.Background(), "closet", "a.jpg")
	assert.ErrorIs(t, err, errPresignNotInitialized)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STYLIST_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("STYLIST_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STYLIST_TEST_MISSING", "fallback"))
	assert.Equal(t, map[string]interface{}{"a": "b"}, stringMapToInterfaceMap(map[string]string{"a": "b"}))
}
