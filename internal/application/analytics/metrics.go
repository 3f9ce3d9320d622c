package analytics

import (
	"context"
	"time"
)

// Metrics receives pipeline measurements
type Metrics interface {
	EventStored(ctx context.Context, eventType string)
	ViewsDeduplicated(ctx context.Context, n int)
	RecalculationFinished(ctx context.Context, took time.Duration, err error)
}

type noopMetrics struct{}

func (noopMetrics) EventStored(context.Context, string) {}
func (noopMetrics) ViewsDeduplicated(context.Context, int) {}
func (noopMetrics) RecalculationFinished(context.Context, time.Duration, error) {}
