package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationBody struct {
	Slug    string `json:"slug" binding:"required,slug"`
	PerPage int    `json:"per_page" binding:"omitempty,min=1,max=100"`
	Sort    string `json:"sort" binding:"omitempty,oneof=name newest"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req validationBody
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.Response) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandleValidationError(t *testing.T) {
	router := newValidationRouter()

	t.Run("field errors carry details", func(t *testing.T) {
		w, resp := postJSON(router, `{"slug":"oak door!","per_page":500,"sort":"price"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.RequestID)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "Must contain only letters, digits, dashes and underscores", fields["slug"])
		assert.Equal(t, "Must be at most 100", fields["per_page"])
		assert.Equal(t, "Must be one of: name newest", fields["sort"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w, resp := postJSON(router, `{"slug":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})

	t.Run("valid body", func(t *testing.T) {
		w, _ := postJSON(router, `{"slug":"oak-door_2","per_page":20}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
