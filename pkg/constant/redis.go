// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

const (
	// BatchKeyPrefix is the Redis key prefix for batch progress records.
	BatchKeyPrefix = "batch"

	// BatchCancelKeySuffix is appended to a batch key to flag a cancellation request.
	BatchCancelKeySuffix = "cancel"

	// BatchStateTTL is how long batch progress and reports stay readable after the last update.
	BatchStateTTL = 72 * time.Hour

	// IdempotencyKeyPrefix is the Redis key prefix for idempotency locks.
	IdempotencyKeyPrefix = "idempotency"

	// IdempotencyTTL is the time-to-live for idempotency keys (24 hours).
	IdempotencyTTL = 24 * time.Hour
)
