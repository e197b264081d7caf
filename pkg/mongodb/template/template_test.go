// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package template

import (
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func sampleTemplate() *model.DocumentTemplate {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	return &model.DocumentTemplate{
		ID:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		BuildingID:   uuid.MustParse("00000000-0000-0000-0000-0000000000b1"),
		Name:         "Arrears letter",
		DocumentType: "arrears_letter",
		Content:      "<p>Dear {{memberName}}, you owe {{arrearAmount}}</p>",
		Variables: []model.VariableDefinition{
			{Name: "memberName", Label: "Member name", Type: "text", Required: true},
			{Name: "arrearAmount", Type: "currency", Required: true, Description: "Total owed"},
		},
		IsActive:  true,
		Version:   3,
		Metadata:  map[string]any{"owner": "administration"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTemplateMongoDBModel_RoundTrip(t *testing.T) {
	t.Parallel()

	entity := sampleTemplate()

	record := &TemplateMongoDBModel{}
	record.FromEntity(entity)

	assert.Equal(t, entity.ID, record.ID)
	assert.Equal(t, entity.BuildingID, record.BuildingID)
	assert.Len(t, record.Variables, 2)
	assert.Nil(t, record.DeletedAt)

	assert.Equal(t, entity, record.ToEntity())
}

func TestTemplateMongoDBModel_ToEntityWithoutVariables(t *testing.T) {
	t.Parallel()

	record := &TemplateMongoDBModel{ID: uuid.New(), Name: "empty"}

	entity := record.ToEntity()

	require.NotNil(t, entity.Variables)
	assert.Empty(t, entity.Variables)
}

func TestListFilter(t *testing.T) {
	t.Parallel()

	buildingID := uuid.New()
	active := false
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  http.QueryHeader
		expected bson.M
	}{
		{
			name:     "only excludes deleted by default",
			filters:  http.QueryHeader{},
			expected: bson.M{"deleted_at": bson.D{{Key: "$eq", Value: nil}}},
		},
		{
			name: "every filter",
			filters: http.QueryHeader{
				BuildingID:   buildingID,
				DocumentType: "receipt",
				IsActive:     &active,
				CreatedAt:    day,
			},
			expected: bson.M{
				"deleted_at":    bson.D{{Key: "$eq", Value: nil}},
				"building_id":   buildingID,
				"document_type": "receipt",
				"is_active":     false,
				"created_at": bson.M{
					"$gte": day,
					"$lt":  day.Add(24 * time.Hour),
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, listFilter(tt.filters))
		})
	}
}

func TestIndexModels(t *testing.T) {
	t.Parallel()

	indexes := indexModels()
	require.Len(t, indexes, 3)

	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		require.NotNil(t, idx.Options)
		require.NotNil(t, idx.Options.Name)
		names = append(names, *idx.Options.Name)
	}

	assert.ElementsMatch(t, []string{
		"idx_template_id_deleted",
		"idx_template_list_main",
		"idx_template_building_type",
	}, names)
}
