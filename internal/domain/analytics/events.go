package analytics

import (
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeRanking = "ProductRanking"

// Event type constants
const (
	EventTypeRankingsRecalculated  = "RankingsRecalculated"
	EventTypeRankingRecordsEnsured = "RankingRecordsEnsured"
	EventTypeAnalyticsBatchApplied = "AnalyticsBatchApplied"
)

// RankingsRecalculatedEvent is published after a full recalculation finished
type RankingsRecalculatedEvent struct {
	shared.BaseDomainEvent
	Recalculated int           `json:"recalculated"`
	Duration     time.Duration `json:"duration"`
}

// NewRankingsRecalculatedEvent creates a new RankingsRecalculatedEvent
func NewRankingsRecalculatedEvent(count int, took time.Duration) *RankingsRecalculatedEvent {
	return &RankingsRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRankingsRecalculated, AggregateTypeRanking),
		Recalculated:    count,
		Duration:        took,
	}
}

// RankingRecordsEnsuredEvent is published when missing ranking rows were created
type RankingRecordsEnsuredEvent struct {
	shared.BaseDomainEvent
	Created int64 `json:"created"`
}

// NewRankingRecordsEnsuredEvent creates a new RankingRecordsEnsuredEvent
func NewRankingRecordsEnsuredEvent(created int64) *RankingRecordsEnsuredEvent {
	return &RankingRecordsEnsuredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRankingRecordsEnsured, AggregateTypeRanking),
		Created:         created,
	}
}

// AnalyticsBatchAppliedEvent is published after a batch changed ranking scores
type AnalyticsBatchAppliedEvent struct {
	shared.BaseDomainEvent
	Products int `json:"products"`
}

// NewAnalyticsBatchAppliedEvent creates a new AnalyticsBatchAppliedEvent
func NewAnalyticsBatchAppliedEvent(products int) *AnalyticsBatchAppliedEvent {
	return &AnalyticsBatchAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAnalyticsBatchApplied, AggregateTypeRanking),
		Products:        products,
	}
}
