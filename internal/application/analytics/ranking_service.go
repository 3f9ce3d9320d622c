package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultWindowDays      = 30
	defaultDecay           = 0.95
	defaultRecalcBatchSize = 200
	defaultSummaryDays     = 30
	maxSummaryDays         = 365
)

// RankingConfig controls full recalculations
type RankingConfig struct {
	WindowDays int
	Decay      float64
	BatchSize  int
}

// RankingService rebuilds ranking scores from daily summaries and keeps every product ranked
type RankingService struct {
	rankings       analytics.RankingRepository
	summaries      analytics.SummaryRepository
	events         analytics.EventRepository
	config         RankingConfig
	eventPublisher shared.EventPublisher
	metrics        Metrics
	logger         *zap.Logger
	now            func() time.Time
}

// NewRankingService creates a new RankingService
func NewRankingService(
	rankings analytics.RankingRepository,
	summaries analytics.SummaryRepository,
	events analytics.EventRepository,
	config RankingConfig,
	logger *zap.Logger,
) *RankingService {
	if config.WindowDays <= 0 {
		config.WindowDays = defaultWindowDays
	}
	if config.Decay <= 0 || config.Decay > 1 {
		config.Decay = defaultDecay
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaultRecalcBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RankingService{
		rankings:  rankings,
		summaries: summaries,
		events:    events,
		config:    config,
		metrics:   noopMetrics{},
		logger:    logger,
		now:       time.Now,
	}
}

// SetEventPublisher sets the publisher for ranking events
func (s *RankingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the pipeline metrics sink
func (s *RankingService) SetMetrics(metrics Metrics) {
	if metrics != nil {
		s.metrics = metrics
	}
}

// RecalculateAll rebuilds every ranking from the summaries of the window
// and mirrors the score into products.popularity_score.
func (s *RankingService) RecalculateAll(ctx context.Context) (int, error) {
	started := s.now().UTC()
	count, err := s.recalculate(ctx, started)
	took := s.now().UTC().Sub(started)
	s.metrics.RecalculationFinished(ctx, took, err)
	if err != nil {
		s.logger.Error("ranking recalculation failed",
			zap.Int("recalculated", count),
			zap.Duration("duration", took),
			zap.Error(err),
		)
		return count, err
	}

	s.logger.Info("rankings recalculated",
		zap.Int("recalculated", count),
		zap.Duration("duration", took),
	)
	s.publish(ctx, analytics.NewRankingsRecalculatedEvent(count, took))
	return count, nil
}

func (s *RankingService) recalculate(ctx context.Context, now time.Time) (int, error) {
	since := analytics.Day(now).AddDate(0, 0, -(s.config.WindowDays - 1))
	grouped, err := s.summaries.ListSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("failed to load daily summaries: %w", err)
	}

	count := 0
	err = s.rankings.ForEachBatch(ctx, s.config.BatchSize, func(batch []analytics.Ranking) error {
		ids := make([]uuid.UUID, 0, len(batch))
		for i := range batch {
			ids = append(ids, batch[i].ProductID)
		}
		stock, err := s.rankings.StockStatus(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load stock status: %w", err)
		}

		for i := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := &batch[i]
			score := r.Recalculate(grouped[r.ProductID], analytics.RecalcParams{
				Now:        now,
				WindowDays: s.config.WindowDays,
				Decay:      s.config.Decay,
				InStock:    stock[r.ProductID],
			})
			if err := s.rankings.Save(ctx, r); err != nil {
				return fmt.Errorf("failed to save ranking %s: %w", r.ProductID, err)
			}
			if err := s.rankings.SyncPopularity(ctx, r.ProductID, score); err != nil {
				return fmt.Errorf("failed to sync popularity %s: %w", r.ProductID, err)
			}
			count++
		}
		return nil
	})
	return count, err
}

// EnsureRecords creates a neutral ranking for every product that has none
func (s *RankingService) EnsureRecords(ctx context.Context) (int64, error) {
	created, err := s.rankings.CreateMissing(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create missing rankings: %w", err)
	}
	if created > 0 {
		s.logger.Info("ranking records created", zap.Int64("created", created))
		s.publish(ctx, analytics.NewRankingRecordsEnsuredEvent(created))
	}
	return created, nil
}

// ProductSummary returns the ranking record, the daily rows and the event counts of the last days
func (s *RankingService) ProductSummary(ctx context.Context, productID uuid.UUID, days int) (*ProductSummaryResponse, error) {
	if days <= 0 {
		days = defaultSummaryDays
	}
	days = min(days, maxSummaryDays)

	now := s.now().UTC()
	since := analytics.Day(now).AddDate(0, 0, -(days - 1))

	ranking, err := s.rankings.FindByProductID(ctx, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	rows, err := s.summaries.ListByProduct(ctx, productID, since)
	if err != nil {
		return nil, err
	}
	if ranking == nil && len(rows) == 0 {
		return nil, shared.ErrNotFound
	}

	counts, err := s.events.CountByProduct(ctx, productID, since)
	if err != nil {
		return nil, err
	}
	eventCounts := make(map[string]int64, len(counts))
	for t, n := range counts {
		eventCounts[string(t)] = n
	}

	return &ProductSummaryResponse{
		ProductID:   productID,
		Days:        days,
		Ranking:     ToRankingResponse(ranking),
		Summaries:   ToDailySummaryResponses(rows),
		EventCounts: eventCounts,
	}, nil
}

func (s *RankingService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish ranking event",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
}
