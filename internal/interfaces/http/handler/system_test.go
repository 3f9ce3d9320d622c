package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// downCache is a cache whose backend is unreachable
type downCache struct{ shared.Cache }

func (downCache) Ping(context.Context) error { return errors.New("dial tcp: connection refused") }

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		cache      shared.Cache
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "all up",
			db:         stubPinger{},
			cache:      newTestCache(),
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "ok", Cache: "ok"},
		},
		{
			name:       "cache down degrades",
			db:         stubPinger{},
			cache:      downCache{},
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "degraded", Database: "ok", Cache: "unavailable"},
		},
		{
			name:       "database down",
			db:         stubPinger{err: errors.New("timeout")},
			cache:      newTestCache(),
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: "unavailable", Database: "unavailable", Cache: "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler(tt.db, tt.cache, "test")
			r := newTestEngine(func(r *gin.Engine) { r.GET("/health", h.Health) })

			w := doRequest(r, http.MethodGet, "/health", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.False(t, got.Time.IsZero())
			got.Time = tt.want.Time
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler(stubPinger{}, newTestCache(), "1.2.3")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/system/info", nil)

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "Doorshop Storefront API", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}
