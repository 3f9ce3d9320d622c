package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AnalyticsMetrics counts what the analytics pipeline ingests and how rankings are rebuilt.
type AnalyticsMetrics struct {
	eventsTotal       *Counter
	viewsDeduplicated *Counter
	recalcTotal       *Counter
	recalcDuration    *Histogram
}

// NewAnalyticsMetrics registers the pipeline instruments on meter
func NewAnalyticsMetrics(meter metric.Meter) (*AnalyticsMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		m   AnalyticsMetrics
		err error
	)
	if m.eventsTotal, err = NewCounter(meter, "shop_analytics_events_total",
		"Analytics events stored, by event type", "{events}"); err != nil {
		return nil, err
	}
	if m.viewsDeduplicated, err = NewCounter(meter, "shop_analytics_views_deduplicated_total",
		"Repeated views in the same session and day that did not count", "{views}"); err != nil {
		return nil, err
	}
	if m.recalcTotal, err = NewCounter(meter, "shop_ranking_recalculations_total",
		"Full ranking recalculations, by outcome", "{runs}"); err != nil {
		return nil, err
	}
	if m.recalcDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "shop_ranking_recalculation_duration_seconds",
		Description: "Time spent recalculating all rankings",
		Unit:        "s",
		Boundaries:  JobDurationBuckets,
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// NewNoopAnalyticsMetrics returns metrics backed by a no-op meter, for tests and disabled telemetry
func NewNoopAnalyticsMetrics() *AnalyticsMetrics {
	m, _ := NewAnalyticsMetrics(noop.NewMeterProvider().Meter("noop"))
	return m
}

// EventStored counts one stored event of eventType
func (m *AnalyticsMetrics) EventStored(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.eventsTotal.Inc(ctx, AttrEventType.String(eventType))
}

// ViewsDeduplicated counts n suppressed repeat views
func (m *AnalyticsMetrics) ViewsDeduplicated(ctx context.Context, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.viewsDeduplicated.Add(ctx, int64(n))
}

// RecalculationFinished records one recalculation run
func (m *AnalyticsMetrics) RecalculationFinished(ctx context.Context, took time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failed"
	}
	m.recalcTotal.Inc(ctx, AttrStatus.String(status))
	m.recalcDuration.RecordDuration(ctx, took, AttrStatus.String(status))
}

// MetricsError describes a failure while building metrics.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// ErrMeterNil is returned when a nil meter is passed in.
var ErrMeterNil = &MetricsError{Op: "telemetry", Err: "meter cannot be nil"}
