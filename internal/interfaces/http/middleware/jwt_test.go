package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/infrastructure/auth"
	"github.com/doorshop/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	svc := auth.NewJWTService(config.JWTConfig{Secret: "test-secret-key-at-least-32-chars", Issuer: "doorshop"})

	router := gin.New()
	router.Use(AdminAuth(svc))
	router.POST("/ops", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, claims.Subject)
	})

	token := func(role string, ttl time.Duration) string {
		tok, err := svc.GenerateToken("ops-bot", role, ttl)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name     string
		header   string
		status   int
		contains string
	}{
		{"missing header", "", http.StatusUnauthorized, "ERR_UNAUTHORIZED"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "ERR_UNAUTHORIZED"},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, "ERR_TOKEN_INVALID"},
		{"expired token", "Bearer " + token(auth.RoleAdmin, -time.Minute), http.StatusUnauthorized, "ERR_TOKEN_EXPIRED"},
		{"wrong role", "Bearer " + token("editor", time.Minute), http.StatusForbidden, "ERR_FORBIDDEN"},
		{"admin", "Bearer " + token(auth.RoleAdmin, time.Minute), http.StatusOK, "ops-bot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ops", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}
