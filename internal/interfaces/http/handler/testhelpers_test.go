package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/infrastructure/cache"
	"github.com/doorshop/backend/internal/infrastructure/persistence"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(persistence.AllModels()...))
	return db
}

func newTestCache() *cache.InMemoryCache {
	return cache.NewInMemoryCache(time.Minute)
}

// newTestEngine returns a router with the request id middleware and the given routes
func newTestEngine(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	register(r)
	return r
}

func doRequest(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the envelope and its data field into dest
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest any) dto.Response {
	t.Helper()
	var envelope struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if dest != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Response
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int64, mutate ...func(*catalog.Product)) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(price))
	require.NoError(t, err)
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
