// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"
)

// FullJitter returns a random duration in [0, baseDelay], capped at ProducerMaxBackoff.
func FullJitter(baseDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		return 0
	}

	ceiling := min(baseDelay, constant.ProducerMaxBackoff)

	n, err := rand.Int(rand.Reader, big.NewInt(int64(ceiling)+1))
	if err != nil {
		return ceiling / 2
	}

	return time.Duration(n.Int64())
}

// NextBackoff doubles the current delay, capped at ProducerMaxBackoff.
func NextBackoff(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * constant.ProducerBackoffFactor)
	if next > constant.ProducerMaxBackoff {
		return constant.ProducerMaxBackoff
	}

	return next
}

// RedeliveryBackoff returns the delay before a failed batch message is requeued.
// The delay grows exponentially with the retry count and is capped at RetryMaxBackoff.
func RedeliveryBackoff(retryCount int) time.Duration {
	if retryCount <= 0 {
		return constant.RetryInitialBackoff
	}

	delay := constant.RetryInitialBackoff
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay >= constant.RetryMaxBackoff {
			return constant.RetryMaxBackoff
		}
	}

	return delay
}
