package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("load product: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{"validation", shared.NewDomainError("VALIDATION_ERROR", "bad"), http.StatusBadRequest, dto.ErrCodeValidation},
		{"invalid sort", shared.NewDomainError("INVALID_SORT", "bad sort"), http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			r := newTestEngine(func(r *gin.Engine) {
				r.GET("/x", func(c *gin.Context) { h.HandleError(c, tt.err) })
			})

			w := doRequest(r, http.MethodGet, "/x", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			errInfo := decodeError(t, w)
			assert.Equal(t, tt.wantCode, errInfo.Code)
			assert.NotEmpty(t, errInfo.RequestID)
			assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), errInfo.RequestID)
		})
	}
}

func TestBaseHandler_HandleErrorHidesInternalMessage(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	h.HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestBaseHandler_PathUUID(t *testing.T) {
	h := &BaseHandler{}
	r := newTestEngine(func(r *gin.Engine) {
		r.GET("/items/:id", func(c *gin.Context) {
			if id, ok := h.pathUUID(c, "id"); ok {
				h.Success(c, id.String())
			}
		})
	})

	w := doRequest(r, http.MethodGet, "/items/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, decodeError(t, w).Code)

	w = doRequest(r, http.MethodGet, "/items/6f1c2b1e-8d59-4c55-9d3f-5d2b0b7c4a10", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryLimit(t *testing.T) {
	for raw, want := range map[string]int{"": 0, "7": 7, "-3": 0, "abc": 0} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x?limit="+raw, nil)
		assert.Equal(t, want, queryLimit(c), "limit=%q", raw)
	}
}

func TestBaseHandler_BindQuery(t *testing.T) {
	type query struct {
		Page int `form:"page" binding:"omitempty,min=1"`
	}
	h := &BaseHandler{}
	r := newTestEngine(func(r *gin.Engine) {
		r.GET("/x", func(c *gin.Context) {
			var q query
			if h.BindQuery(c, &q) {
				h.Success(c, q.Page)
			}
		})
	})

	w := doRequest(r, http.MethodGet, "/x?page=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeValidation, errInfo.Code)
	if assert.Len(t, errInfo.Details, 1) {
		assert.Equal(t, "page", errInfo.Details[0].Field)
	}

	w = doRequest(r, http.MethodGet, "/x?page=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
