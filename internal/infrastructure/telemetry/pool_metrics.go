package telemetry

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PoolStatsFunc reports the current state of a connection pool
type PoolStatsFunc func() sql.DBStats

// RegisterDBPoolMetrics exposes the pool counters as observable instruments read at collection time.
// The returned registration must be unregistered on shutdown when the pool closes before the meter.
func RegisterDBPoolMetrics(meter metric.Meter, stats PoolStatsFunc) (metric.Registration, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	connections, err := meter.Int64ObservableGauge("shop_db_pool_connections",
		metric.WithDescription("Pool connections by state"),
		metric.WithUnit("{connections}"))
	if err != nil {
		return nil, err
	}
	maxOpen, err := meter.Int64ObservableGauge("shop_db_pool_connections_max",
		metric.WithDescription("Configured maximum of open connections"),
		metric.WithUnit("{connections}"))
	if err != nil {
		return nil, err
	}
	waits, err := meter.Int64ObservableCounter("shop_db_pool_wait_total",
		metric.WithDescription("Connections waited for because the pool was exhausted"),
		metric.WithUnit("{waits}"))
	if err != nil {
		return nil, err
	}

	inUse := metric.WithAttributes(attribute.String("state", "in_use"))
	idle := metric.WithAttributes(attribute.String("state", "idle"))

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := stats()
		o.ObserveInt64(connections, int64(s.InUse), inUse)
		o.ObserveInt64(connections, int64(s.Idle), idle)
		o.ObserveInt64(maxOpen, int64(s.MaxOpenConnections))
		o.ObserveInt64(waits, s.WaitCount)
		return nil
	}, connections, maxOpen, waits)
}
