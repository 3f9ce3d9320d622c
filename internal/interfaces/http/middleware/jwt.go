package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/doorshop/backend/internal/infrastructure/auth"
	"github.com/doorshop/backend/internal/infrastructure/logger"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTSubjectKey = "jwt_subject"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AdminAuth guards the ops routes: a valid bearer token with role=admin is required
func AdminAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortAuth(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortAuth(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
		if token == "" {
			abortAuth(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Missing token")
			return
		}

		claims, err := jwtService.ValidateAdminToken(token)
		if err != nil {
			logger.GetGinLogger(c).Warn("ops token rejected", zap.Error(err))
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				abortAuth(c, http.StatusUnauthorized, dto.ErrCodeTokenExpired, "Token has expired")
			case errors.Is(err, auth.ErrForbiddenRole):
				abortAuth(c, http.StatusForbidden, dto.ErrCodeForbidden, "Admin role required")
			default:
				abortAuth(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, "Invalid token")
			}
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTSubjectKey, claims.Subject)
		c.Next()
	}
}

// GetJWTClaims returns the claims set by AdminAuth
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortAuth(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
