package handler

import "github.com/doorshop/backend/internal/interfaces/http/dto"

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// JobAcceptedData is returned when an ops job was queued
// @Description Queued background job
type JobAcceptedData struct {
	Job     string `json:"job" example:"RECALCULATE_RANKINGS"`
	Message string `json:"message" example:"job queued"`
}

// CacheFlushData reports how many cache keys were removed
// @Description Cache flush result
type CacheFlushData struct {
	Pattern string `json:"pattern" example:"products:*"`
	Deleted int    `json:"deleted" example:"12"`
}
