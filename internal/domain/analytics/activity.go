package analytics

import (
	"math"

	"github.com/google/uuid"
)

const (
	viewWeight               = 0.1
	detailViewWeight         = 0.3
	maxDurationScore         = 3.0
	maxBatchIncrease         = 5.0
	summaryInteractionWeight = 0.5
	singleViewIncrease       = 0.1
)

// ProductActivity is what one batch contributed to one product after view deduplication
type ProductActivity struct {
	ProductID    uuid.UUID
	Views        int
	DetailViews  int
	Duration     float64
	Interactions []InteractionType
	NewSessions  int
}

// ScoreIncrease is the ranking score gain for the activity, capped at 5
func (a *ProductActivity) ScoreIncrease() float64 {
	views := float64(a.Views)*viewWeight + float64(a.DetailViews)*detailViewWeight
	duration := min(a.Duration/100, maxDurationScore)
	interactions := 0.0
	for _, t := range a.Interactions {
		interactions += t.Weight()
	}
	return min(views+duration+interactions, maxBatchIncrease)
}

// SummaryDelta converts the activity into daily summary increments; durations round to whole seconds
func (a *ProductActivity) SummaryDelta() SummaryDelta {
	return SummaryDelta{
		Views:        a.Views,
		DetailViews:  a.DetailViews,
		Interactions: len(a.Interactions),
		Duration:     int(math.Round(a.Duration)),
		NewSessions:  a.NewSessions,
	}
}

// HasScoreInput reports whether the activity affects ranking or summary at all
func (a *ProductActivity) HasScoreInput() bool {
	return a.Views > 0 || a.DetailViews > 0 || a.Duration != 0 || len(a.Interactions) > 0 || a.NewSessions > 0
}
