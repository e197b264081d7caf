// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidServerAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{value: "localhost:4005", valid: true},
		{value: "docs.example.com:443", valid: true},
		{value: "localhost", valid: false},
		{value: ":4005", valid: false},
		{value: "localhost:", valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, isValidServerAddress(tt.value))
		})
	}
}
