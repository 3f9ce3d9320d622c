package analytics

import (
	"math"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	MinScore = 0.0
	MaxScore = 100.0

	outOfStockMultiplier = 0.5
	seasonalMaxBonus     = 5.0
)

// Ranking is the per-product ranking record that orders smart listings
type Ranking struct {
	shared.BaseEntity
	ProductID             uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	RankingScore          float64           `gorm:"not null;default:0;index"`
	AdminScore            float64           `gorm:"not null;default:0"`
	IsFeatured            bool              `gorm:"not null;default:false"`
	PriorityUntil         *time.Time        `gorm:""`
	SeasonalRelevance     shared.JSONMap    `gorm:"type:jsonb"`
	CategoryBoost         float64           `gorm:"not null;default:0"`
	ImpressionsCount      int               `gorm:"not null;default:0"`
	LastRecalculated      *time.Time        `gorm:""`
	ProductTypeMultiplier float64           `gorm:"not null;default:1"`
	StockStatusMultiplier float64           `gorm:"not null;default:1"`
	PriceRangeMultiplier  float64           `gorm:"not null;default:1"`
	CustomTags            shared.StringList `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Ranking) TableName() string {
	return "product_rankings"
}

// NewRanking creates a neutral ranking record for a product
func NewRanking(productID uuid.UUID) *Ranking {
	return &Ranking{
		BaseEntity:            shared.NewBaseEntity(),
		ProductID:             productID,
		ProductTypeMultiplier: 1,
		StockStatusMultiplier: 1,
		PriceRangeMultiplier:  1,
	}
}

// ApplyView counts one deduplicated single view
func (r *Ranking) ApplyView() {
	r.ImpressionsCount++
	r.RankingScore = ClampScore(r.RankingScore + singleViewIncrease)
	r.Touch()
}

// ApplyInteraction adds an interaction weight; negative weights lower the score
func (r *Ranking) ApplyInteraction(weight float64) {
	r.RankingScore = ClampScore(r.RankingScore + weight)
	r.Touch()
}

// ApplyActivity folds batch activity into the record and returns the score increase
func (r *Ranking) ApplyActivity(a *ProductActivity) float64 {
	inc := a.ScoreIncrease()
	r.ImpressionsCount += a.Views
	r.RankingScore = ClampScore(r.RankingScore + inc)
	r.Touch()
	return inc
}

// IsPromoted reports whether an admin pinned the product at now
func (r *Ranking) IsPromoted(now time.Time) bool {
	return r.IsFeatured || (r.PriorityUntil != nil && r.PriorityUntil.After(now))
}

// RecalcParams controls a full recalculation
type RecalcParams struct {
	Now        time.Time
	WindowDays int
	Decay      float64
	InStock    bool
}

// RollingScore sums decayed daily scores inside the window.
// A summary from today has age 0 and full weight.
func RollingScore(summaries []DailySummary, p RecalcParams) float64 {
	today := Day(p.Now)
	total := 0.0
	for i := range summaries {
		age := int(today.Sub(Day(summaries[i].Date)).Hours() / 24)
		if age < 0 || (p.WindowDays > 0 && age >= p.WindowDays) {
			continue
		}
		total += summaries[i].Score() * math.Pow(p.Decay, float64(age))
	}
	return total
}

// Recalculate rebuilds the score from the daily summaries of the window
func (r *Ranking) Recalculate(summaries []DailySummary, p RecalcParams) float64 {
	if p.InStock {
		r.StockStatusMultiplier = 1.0
	} else {
		r.StockStatusMultiplier = outOfStockMultiplier
	}

	rolling := RollingScore(summaries, p)
	score := rolling*r.ProductTypeMultiplier*r.StockStatusMultiplier*r.PriceRangeMultiplier +
		r.CategoryBoost + r.SeasonalBonus(p.Now)
	score = ClampScore(score)

	if r.IsPromoted(p.Now) {
		score = math.Max(score, ClampScore(r.AdminScore))
	}

	now := p.Now
	r.RankingScore = score
	r.LastRecalculated = &now
	r.UpdatedAt = now
	return score
}

// SeasonalBonus maps the relevance for the season of t (0..100) onto 0..5
func (r *Ranking) SeasonalBonus(t time.Time) float64 {
	if r.SeasonalRelevance == nil {
		return 0
	}
	return r.SeasonalRelevance.Float(string(SeasonOf(t))) / 100 * seasonalMaxBonus
}

// ClampScore bounds a score to the 0..100 range
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return MinScore
	}
	return math.Min(MaxScore, math.Max(MinScore, v))
}

// Season is a meteorological season of the northern hemisphere
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

// SeasonOf returns the season of t in UTC
func SeasonOf(t time.Time) Season {
	switch t.UTC().Month() {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}
