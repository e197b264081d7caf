// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package batch

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metrics holds the batch generation OTel instruments.
// All fields are non-nil after NewMetrics or NoopMetrics.
type Metrics struct {
	// DocumentsGenerated counts documents saved with status generated.
	DocumentsGenerated metric.Int64Counter

	// DocumentsFailed counts subjects recorded as failed, by error code.
	DocumentsFailed metric.Int64Counter

	// BatchesActive tracks batches currently running.
	BatchesActive metric.Int64UpDownCounter
}

// NewMetrics registers the batch instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	generated, err := meter.Int64Counter(
		"documents_generated_total",
		metric.WithDescription("Documents generated by batch runs"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create documents_generated_total counter: %w", err)
	}

	failed, err := meter.Int64Counter(
		"documents_failed_total",
		metric.WithDescription("Batch subjects that failed to generate"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create documents_failed_total counter: %w", err)
	}

	active, err := meter.Int64UpDownCounter(
		"batches_active",
		metric.WithDescription("Batches currently running"),
		metric.WithUnit("{batch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create batches_active up_down_counter: %w", err)
	}

	return &Metrics{
		DocumentsGenerated: generated,
		DocumentsFailed:    failed,
		BatchesActive:      active,
	}, nil
}

// NoopMetrics returns Metrics backed by no-op instruments.
func NoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("noop")

	// noop meter never returns errors.
	generated, _ := meter.Int64Counter("documents_generated_total")
	failed, _ := meter.Int64Counter("documents_failed_total")
	active, _ := meter.Int64UpDownCounter("batches_active")

	return &Metrics{
		DocumentsGenerated: generated,
		DocumentsFailed:    failed,
		BatchesActive:      active,
	}
}
