package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestControllerFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/v1/products/:slug":          "products",
		"/api/v1/categories/:id/products": "categories",
		"/api/v2/home":                    "home",
		"/health":                         "health",
		"/api/v1/:slug":                   "",
		"":                                "",
	}
	for route, expected := range tests {
		assert.Equal(t, expected, controllerFromRoute(route), route)
	}
}

func TestProfiling_SetsLabels(t *testing.T) {
	router := gin.New()
	router.Use(Profiling(true))

	var route, method string
	router.GET("/api/v1/brands/:slug", func(c *gin.Context) {
		route, _ = pprof.Label(c.Request.Context(), "route")
		method, _ = pprof.Label(c.Request.Context(), "method")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/brands/acme", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/brands/:slug", route)
	assert.Equal(t, http.MethodGet, method)
}

func TestProfiling_Disabled(t *testing.T) {
	router := newTestRouter(Profiling(false))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
