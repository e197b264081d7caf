// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/stretchr/testify/assert"
)

func TestFullJitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		baseDelay time.Duration
		wantMax   time.Duration
	}{
		{name: "zero base returns zero", baseDelay: 0, wantMax: 0},
		{name: "negative base returns zero", baseDelay: -time.Second, wantMax: 0},
		{name: "initial backoff range", baseDelay: constant.ProducerInitialBackoff, wantMax: constant.ProducerInitialBackoff},
		{name: "base exceeding max is capped", baseDelay: time.Minute, wantMax: constant.ProducerMaxBackoff},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for i := 0; i < 100; i++ {
				result := FullJitter(tt.baseDelay)
				assert.GreaterOrEqual(t, result, time.Duration(0))
				assert.LessOrEqual(t, result, tt.wantMax, "iteration %d", i)
			}
		})
	}
}

func TestNextBackoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Second, NextBackoff(constant.ProducerInitialBackoff))
	assert.Equal(t, 4*time.Second, NextBackoff(2*time.Second))
	assert.Equal(t, constant.ProducerMaxBackoff, NextBackoff(8*time.Second))
	assert.Equal(t, constant.ProducerMaxBackoff, NextBackoff(constant.ProducerMaxBackoff))
}

func TestRedeliveryBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		retries int
		want    time.Duration
	}{
		{retries: -1, want: constant.RetryInitialBackoff},
		{retries: 0, want: constant.RetryInitialBackoff},
		{retries: 1, want: 2 * time.Second},
		{retries: 3, want: 8 * time.Second},
		{retries: 10, want: constant.RetryMaxBackoff},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RedeliveryBackoff(tt.retries), "retries=%d", tt.retries)
	}
}
