// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package mongodb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSortDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, SortDirection("asc"))
	assert.Equal(t, 1, SortDirection("ASC"))
	assert.Equal(t, -1, SortDirection("desc"))
	assert.Equal(t, -1, SortDirection(""))
}

func TestIsIndexConflict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"options conflict", errors.New("(IndexOptionsConflict) Index with name: idx already exists with different options"), true},
		{"already exists", errors.New("index already exists"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsIndexConflict(tt.err))
		})
	}
}

func TestNotDeleted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.D{{Key: "$eq", Value: nil}}, NotDeleted())
}
