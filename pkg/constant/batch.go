// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// Batch statuses tracked in Redis.
const (
	BatchStatusQueued    = "queued"
	BatchStatusRunning   = "running"
	BatchStatusCompleted = "completed"
	BatchStatusCancelled = "cancelled"
	BatchStatusFailed    = "failed"
)

// Batch limits and pacing defaults.
const (
	// MaxBatchSubjects bounds the number of subjects accepted in one batch request.
	MaxBatchSubjects = 2000

	// DefaultBatchInterval is the pause between two subjects of a batch.
	DefaultBatchInterval = 100 * time.Millisecond

	// DefaultBatchBurst lets the first subjects of a run start without waiting.
	DefaultBatchBurst = 1

	// CancelPollInterval is how often the worker checks the cancellation flag of a running batch.
	CancelPollInterval = 1 * time.Second
)
