// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// RabbitMQ Consumer Retry Configuration
const (
	// MaxMessageRetries is the maximum number of redeliveries of a batch message before it goes to the DLQ.
	MaxMessageRetries = 3

	// RetryInitialBackoff is the base delay for exponential backoff calculation.
	RetryInitialBackoff = 1 * time.Second

	// RetryMaxBackoff is the upper bound for the backoff delay.
	RetryMaxBackoff = 30 * time.Second

	// RetryCountHeader is the RabbitMQ message header key for tracking retry attempts.
	RetryCountHeader = "x-retry-count"
)

// RabbitMQ Producer Retry Configuration
const (
	// ProducerMaxRetries is the maximum number of publish retry attempts before giving up.
	ProducerMaxRetries = 5

	// ProducerInitialBackoff is the initial delay before the first retry attempt.
	ProducerInitialBackoff = 500 * time.Millisecond

	// ProducerMaxBackoff is the upper bound for the producer retry backoff delay.
	ProducerMaxBackoff = 10 * time.Second

	// ProducerBackoffFactor is the multiplier applied to the backoff on each successive retry.
	ProducerBackoffFactor = 2.0
)

// RabbitMQ Connection Monitor Configuration
const (
	// ConnectionMonitorInterval is the period between background RabbitMQ health checks.
	ConnectionMonitorInterval = 10 * time.Second
)

// RabbitMQ Topology and Consumer Configuration
const (
	// DefaultPrefetchCount bounds the unacknowledged batch messages held by one consumer.
	DefaultPrefetchCount = 1

	// DefaultWorkerCount is the number of goroutines draining one queue.
	DefaultWorkerCount = 2

	// ContentTypeJSON is the content type of every published message.
	ContentTypeJSON = "application/json"

	// RequestIDHeader carries the request id across the broker.
	RequestIDHeader = "x-request-id"
)
