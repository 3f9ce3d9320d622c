package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Enabled:       true,
		Endpoint:      "http://localhost:9000",
		Region:        "eu-central-1",
		Bucket:        "media",
		AccessKey:     "test-key",
		SecretKey:     "test-secret",
		UsePathStyle:  true,
		PresignExpiry: 10 * time.Minute,
	}
}

func TestNewS3MediaStore_Validation(t *testing.T) {
	_, err := NewS3MediaStore(nil)
	assert.ErrorContains(t, err, "configuration is required")

	cfg := testStorageConfig()
	cfg.Bucket = ""
	_, err = NewS3MediaStore(cfg)
	assert.ErrorContains(t, err, "bucket is required")

	cfg = testStorageConfig()
	cfg.SecretKey = ""
	_, err = NewS3MediaStore(cfg)
	assert.ErrorContains(t, err, "secret key")

	cfg = testStorageConfig()
	cfg.PresignExpiry = 0
	store, err := NewS3MediaStore(cfg, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, store.presignExpiry)
	assert.Equal(t, "media", store.Bucket())
}

func TestS3MediaStore_URL(t *testing.T) {
	ctx := context.Background()

	t.Run("absolute references pass through", func(t *testing.T) {
		store, err := NewS3MediaStore(testStorageConfig())
		require.NoError(t, err)
		for _, ref := range []string{"", "https://img.example.com/a.jpg", "//cdn.example.com/a.jpg"} {
			assert.Equal(t, ref, store.URL(ctx, ref))
		}
	})

	t.Run("public base url", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.PublicBaseURL = "https://cdn.example.com/media/"
		store, err := NewS3MediaStore(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/media/products/oak.jpg", store.URL(ctx, "/products/oak.jpg"))
	})

	t.Run("presigned url", func(t *testing.T) {
		store, err := NewS3MediaStore(testStorageConfig())
		require.NoError(t, err)

		raw := store.URL(ctx, "products/oak.jpg")
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9000", u.Host)
		assert.Equal(t, "/media/products/oak.jpg", u.Path)
		assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	})
}
