package analytics

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary holds one product's counters for one UTC day
type DailySummary struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analytics_daily_summary_product_date,priority:1"`
	Date              time.Time `gorm:"not null;uniqueIndex:idx_analytics_daily_summary_product_date,priority:2;index"`
	ViewsCount        int       `gorm:"not null;default:0"`
	DetailViewsCount  int       `gorm:"not null;default:0"`
	InteractionsCount int       `gorm:"not null;default:0"`
	UniqueSessions    int       `gorm:"not null;default:0"`
	AvgViewDuration   int       `gorm:"not null;default:0"`
	TotalViewDuration int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DailySummary) TableName() string {
	return "analytics_daily_summary"
}

// NewDailySummary creates an empty summary for the UTC day containing t
func NewDailySummary(productID uuid.UUID, t time.Time) *DailySummary {
	now := time.Now().UTC()
	return &DailySummary{
		ID:        uuid.New(),
		ProductID: productID,
		Date:      Day(t),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SummaryDelta is an increment to a daily summary
type SummaryDelta struct {
	Views        int
	DetailViews  int
	Interactions int
	Duration     int
	NewSessions  int
}

// IsZero reports whether applying the delta would change nothing
func (d SummaryDelta) IsZero() bool {
	return d == SummaryDelta{}
}

// Add applies delta and refreshes the average view duration
func (s *DailySummary) Add(d SummaryDelta) {
	s.ViewsCount += d.Views
	s.DetailViewsCount += d.DetailViews
	s.InteractionsCount += d.Interactions
	s.TotalViewDuration += d.Duration
	s.UniqueSessions += d.NewSessions
	s.AvgViewDuration = s.TotalViewDuration / max(s.ViewsCount+s.DetailViewsCount, 1)
	s.UpdatedAt = time.Now().UTC()
}

// Score is the day's contribution to the rolling ranking score before decay
func (s *DailySummary) Score() float64 {
	return float64(s.ViewsCount)*viewWeight +
		float64(s.DetailViewsCount)*detailViewWeight +
		min(float64(s.TotalViewDuration)/100, maxDurationScore) +
		float64(s.InteractionsCount)*summaryInteractionWeight
}

// Day truncates t to midnight UTC
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats the UTC day of t as YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
