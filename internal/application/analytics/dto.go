package analytics

import (
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionData is the client-side session context sent with tracking calls
type SessionData struct {
	SessionID  string `json:"session_id" binding:"omitempty,max=255"`
	UserAgent  string `json:"user_agent" binding:"omitempty,max=1000"`
	DeviceType string `json:"device_type" binding:"omitempty,max=20"`
	Referrer   string `json:"referrer" binding:"omitempty,max=2000"`
	PageURL    string `json:"page_url" binding:"omitempty,max=2000"`
}

// EventInput is one raw event of a batch. Malformed events are skipped, not rejected.
type EventInput struct {
	ProductID       string         `json:"product_id"`
	Type            string         `json:"type"`
	SessionID       string         `json:"session_id"`
	DurationSeconds float64        `json:"duration_seconds"`
	InteractionType string         `json:"interaction_type"`
	InteractionData shared.JSONMap `json:"interaction_data"`
	PageURL         string         `json:"page_url"`
}

// BatchRequest is the body of POST /analytics/batch
type BatchRequest struct {
	Events      []EventInput `json:"events"`
	SessionData SessionData  `json:"session_data"`
}

// BatchResult reports what a batch did
type BatchResult struct {
	Processed    int `json:"processed"`
	Skipped      int `json:"skipped"`
	Deduplicated int `json:"deduplicated"`
	Products     int `json:"products"`
}

// ProductViewRequest is the body of POST /analytics/product-view
type ProductViewRequest struct {
	ProductID   string      `json:"product_id" binding:"required"`
	SessionData SessionData `json:"session_data"`
}

// ProductViewResult reports whether the view counted
type ProductViewResult struct {
	Counted bool `json:"counted"`
}

// InteractionRequest is the body of POST /analytics/product-interaction
type InteractionRequest struct {
	ProductID       string         `json:"product_id" binding:"required"`
	InteractionType string         `json:"interaction_type" binding:"required,max=50"`
	InteractionData shared.JSONMap `json:"interaction_data"`
	SessionData     SessionData    `json:"session_data"`
}

// InteractionResult returns the applied weight and the new score
type InteractionResult struct {
	Weight       float64 `json:"weight"`
	RankingScore float64 `json:"ranking_score"`
}

// RequestMeta carries what the transport knows about the caller
type RequestMeta struct {
	IPAddress     string
	UserAgent     string
	Referrer      string
	SessionHeader string
}

// RankingResponse is a ranking record in API responses
type RankingResponse struct {
	ProductID             uuid.UUID         `json:"product_id"`
	RankingScore          float64           `json:"ranking_score"`
	AdminScore            float64           `json:"admin_score"`
	IsFeatured            bool              `json:"is_featured"`
	PriorityUntil         *time.Time        `json:"priority_until,omitempty"`
	SeasonalRelevance     shared.JSONMap    `json:"seasonal_relevance,omitempty"`
	CategoryBoost         float64           `json:"category_boost"`
	ImpressionsCount      int               `json:"impressions_count"`
	LastRecalculated      *time.Time        `json:"last_recalculated,omitempty"`
	ProductTypeMultiplier float64           `json:"product_type_multiplier"`
	StockStatusMultiplier float64           `json:"stock_status_multiplier"`
	PriceRangeMultiplier  float64           `json:"price_range_multiplier"`
	CustomTags            shared.StringList `json:"custom_tags,omitempty"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// DailySummaryResponse is one day of product counters
type DailySummaryResponse struct {
	Date              string `json:"date"`
	ViewsCount        int    `json:"views_count"`
	DetailViewsCount  int    `json:"detail_views_count"`
	InteractionsCount int    `json:"interactions_count"`
	UniqueSessions    int    `json:"unique_sessions"`
	AvgViewDuration   int    `json:"avg_view_duration"`
	TotalViewDuration int    `json:"total_view_duration"`
}

// ProductSummaryResponse is the analytics overview of one product
type ProductSummaryResponse struct {
	ProductID   uuid.UUID              `json:"product_id"`
	Days        int                    `json:"days"`
	Ranking     *RankingResponse       `json:"ranking"`
	Summaries   []DailySummaryResponse `json:"summaries"`
	EventCounts map[string]int64       `json:"event_counts"`
}

// ToRankingResponse converts a domain ranking
func ToRankingResponse(r *analytics.Ranking) *RankingResponse {
	if r == nil {
		return nil
	}
	return &RankingResponse{
		ProductID:             r.ProductID,
		RankingScore:          r.RankingScore,
		AdminScore:            r.AdminScore,
		IsFeatured:            r.IsFeatured,
		PriorityUntil:         r.PriorityUntil,
		SeasonalRelevance:     r.SeasonalRelevance,
		CategoryBoost:         r.CategoryBoost,
		ImpressionsCount:      r.ImpressionsCount,
		LastRecalculated:      r.LastRecalculated,
		ProductTypeMultiplier: r.ProductTypeMultiplier,
		StockStatusMultiplier: r.StockStatusMultiplier,
		PriceRangeMultiplier:  r.PriceRangeMultiplier,
		CustomTags:            r.CustomTags,
		UpdatedAt:             r.UpdatedAt,
	}
}

// ToDailySummaryResponses converts summary rows, keeping their order
func ToDailySummaryResponses(rows []analytics.DailySummary) []DailySummaryResponse {
	out := make([]DailySummaryResponse, 0, len(rows))
	for i := range rows {
		s := &rows[i]
		out = append(out, DailySummaryResponse{
			Date:              analytics.DayKey(s.Date),
			ViewsCount:        s.ViewsCount,
			DetailViewsCount:  s.DetailViewsCount,
			InteractionsCount: s.InteractionsCount,
			UniqueSessions:    s.UniqueSessions,
			AvgViewDuration:   s.AvgViewDuration,
			TotalViewDuration: s.TotalViewDuration,
		})
	}
	return out
}
