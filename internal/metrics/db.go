package metrics

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RegisterDBStats exposes connection pool statistics of db as observable gauges.
// Values are read from sql.DBStats at collection time. The returned
// registration should be unregistered on shutdown.
func RegisterDBStats(meterProvider metric.MeterProvider, namespace string, db *sql.DB) (metric.Registration, error) {
	meter := meterProvider.Meter(namespace)

	openConns, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_db_open_connections", namespace),
		metric.WithDescription("Number of established database connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create open connections gauge: %w", err)
	}

	inUse, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_db_in_use_connections", namespace),
		metric.WithDescription("Number of database connections currently in use"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in use connections gauge: %w", err)
	}

	waitCount, err := meter.Int64ObservableCounter(
		fmt.Sprintf("%s_db_wait_count", namespace),
		metric.WithDescription("Total number of connections waited for"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wait count counter: %w", err)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(openConns, int64(stats.OpenConnections))
		o.ObserveInt64(inUse, int64(stats.InUse))
		o.ObserveInt64(waitCount, stats.WaitCount)
		return nil
	}, openConns, inUse, waitCount)
}
