package handler

import (
	"strconv"

	analyticsapp "github.com/doorshop/backend/internal/application/analytics"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SessionIDHeader is the default header carrying the storefront session when the body has none
const SessionIDHeader = "X-Session-ID"

// AnalyticsHandler ingests storefront tracking events and exposes product summaries
type AnalyticsHandler struct {
	BaseHandler
	trackingService *analyticsapp.TrackingService
	rankingService  *analyticsapp.RankingService
	sessionHeader   string
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(trackingService *analyticsapp.TrackingService, rankingService *analyticsapp.RankingService) *AnalyticsHandler {
	return &AnalyticsHandler{
		trackingService: trackingService,
		rankingService:  rankingService,
		sessionHeader:   SessionIDHeader,
	}
}

// SetSessionHeader overrides the session header name
func (h *AnalyticsHandler) SetSessionHeader(name string) {
	if name != "" {
		h.sessionHeader = name
	}
}

func (h *AnalyticsHandler) requestMeta(c *gin.Context) analyticsapp.RequestMeta {
	return analyticsapp.RequestMeta{
		IPAddress:     middleware.ClientIP(c),
		UserAgent:     c.Request.UserAgent(),
		Referrer:      c.Request.Referer(),
		SessionHeader: c.GetHeader(h.sessionHeader),
	}
}

// Batch godoc
// @ID           trackAnalyticsBatch
// @Summary      Track a batch of events
// @Description  Stores the events and applies deduplicated views, durations and interactions to rankings, daily summaries and the session in one transaction
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session ID"
// @Param        request body analyticsapp.BatchRequest true "Events"
// @Success      200 {object} APIResponse[analyticsapp.BatchResult]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /analytics/batch [post]
func (h *AnalyticsHandler) Batch(c *gin.Context) {
	var req analyticsapp.BatchRequest
	if !h.BindJSON(c, &req) {
		return
	}
	res, err := h.trackingService.ProcessBatch(c.Request.Context(), req, h.requestMeta(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}

// ProductView godoc
// @ID           trackProductView
// @Summary      Track a product view
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session ID"
// @Param        request body analyticsapp.ProductViewRequest true "View"
// @Success      200 {object} APIResponse[analyticsapp.ProductViewResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /analytics/product-view [post]
func (h *AnalyticsHandler) ProductView(c *gin.Context) {
	var req analyticsapp.ProductViewRequest
	if !h.BindJSON(c, &req) {
		return
	}
	res, err := h.trackingService.TrackProductView(c.Request.Context(), req, h.requestMeta(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}

// ProductInteraction godoc
// @ID           trackProductInteraction
// @Summary      Track a product interaction
// @Description  Adds the interaction weight to the product's ranking score
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session ID"
// @Param        request body analyticsapp.InteractionRequest true "Interaction"
// @Success      200 {object} APIResponse[analyticsapp.InteractionResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /analytics/product-interaction [post]
func (h *AnalyticsHandler) ProductInteraction(c *gin.Context) {
	var req analyticsapp.InteractionRequest
	if !h.BindJSON(c, &req) {
		return
	}
	res, err := h.trackingService.TrackInteraction(c.Request.Context(), req, h.requestMeta(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}

// ProductSummary godoc
// @ID           getProductAnalyticsSummary
// @Summary      Product analytics summary
// @Description  The ranking record, daily summary rows and event counts of the last days
// @Tags         analytics
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        days query int false "Days to include" default(30) maximum(365)
// @Success      200 {object} APIResponse[analyticsapp.ProductSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /analytics/products/{id}/summary [get]
func (h *AnalyticsHandler) ProductSummary(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	days, _ := strconv.Atoi(c.Query("days"))
	res, err := h.rankingService.ProductSummary(c.Request.Context(), id, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}
