package handler

import (
	"net/http"
	"testing"
	"time"

	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontHandler(t *testing.T) {
	db := setupTestDB(t)
	products := persistence.NewGormProductRepository(db)
	svc := catalogapp.NewStorefrontService(
		persistence.NewGormContentRepository(db),
		persistence.NewGormCategoryRepository(db),
		products,
		persistence.NewGormVideoRepository(db),
		newTestCache(), time.Minute, nil,
	)
	h := NewStorefrontHandler(svc)
	r := newTestEngine(func(r *gin.Engine) {
		r.GET("/home", h.Home)
		r.GET("/tips", h.Tips)
		r.GET("/search/suggestions", h.Suggestions)
		r.GET("/videos/featured", h.FeaturedVideos)
		r.GET("/videos/latest", h.LatestVideos)
		r.GET("/videos/recent", h.LatestVideos)
		r.GET("/videos/popular", h.PopularVideos)
		r.GET("/videos/by-product/:slug", h.ProductVideos)
	})

	oak := createProduct(t, db, "Oak Door", 300)
	video, err := catalog.NewVideo("Installing an oak door", "videos/oak.mp4", &oak.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(video).Error)

	t.Run("home", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/home", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var home catalogapp.HomeResponse
		decodeData(t, w, &home)
		assert.NotNil(t, home.Banners)
		assert.NotNil(t, home.Promotions)
	})

	t.Run("short query yields nothing", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/suggestions?q=%20o%20", "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []catalogapp.SuggestionItem
		decodeData(t, w, &items)
		assert.Empty(t, items)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("suggestions", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/search/suggestions?q=oak", "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []catalogapp.SuggestionItem
		decodeData(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "oak-door", items[0].Slug)
	})

	t.Run("videos", func(t *testing.T) {
		for _, path := range []string{"/videos/featured", "/videos/latest?limit=50", "/videos/popular", "/tips"} {
			w := doRequest(r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code, path)
		}

		latest := doRequest(r, http.MethodGet, "/videos/latest?limit=5", "")
		recent := doRequest(r, http.MethodGet, "/videos/recent?limit=5", "")
		require.Equal(t, http.StatusOK, recent.Code)
		assert.JSONEq(t, latest.Body.String(), recent.Body.String())

		w := doRequest(r, http.MethodGet, "/videos/by-product/oak-door", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var videos []catalogapp.VideoResponse
		decodeData(t, w, &videos)
		require.Len(t, videos, 1)
		assert.Equal(t, "Installing an oak door", videos[0].Title)

		w = doRequest(r, http.MethodGet, "/videos/by-product/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
