// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package document

import (
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *model.GeneratedDocument {
	generatedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	return &model.GeneratedDocument{
		ID:         uuid.MustParse("00000000-0000-0000-0000-0000000000d1"),
		TemplateID: uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		BuildingID: uuid.MustParse("00000000-0000-0000-0000-0000000000b1"),
		Type:       constant.DocumentTypeArrearsLetter,
		Title:      "Arrears letters March - João Silva",
		Content:    "<p>Dear João Silva, you owe €120.00</p>",
		Status:     constant.DocumentStatusProcessing,
		Metadata: model.DocumentMetadata{
			MemberID:         uuid.MustParse("00000000-0000-0000-0000-0000000000c1"),
			MemberName:       "João Silva",
			MemberEmail:      "joao@example.com",
			BatchID:          uuid.MustParse("00000000-0000-0000-0000-0000000000e1"),
			BatchTitle:       "Arrears letters March",
			SendMethod:       constant.SendMethodPrint,
			GeneratedAt:      generatedAt,
			Variables:        map[string]string{"memberName": "João Silva", "arrearAmount": "€120.00"},
			TemplateVersion:  2,
			TemplateSnapshot: "<p>Dear {{memberName}}, you owe {{arrearAmount}}</p>",
		},
		CreatedAt: generatedAt,
		UpdatedAt: generatedAt,
	}
}

func TestDocumentMongoDBModel_RoundTrip(t *testing.T) {
	t.Parallel()

	entity := sampleDocument()

	record := &DocumentMongoDBModel{}
	record.FromEntity(entity)

	assert.Equal(t, entity.Metadata.BatchID, record.Metadata.BatchID)
	assert.Equal(t, "<p>Dear {{memberName}}, you owe {{arrearAmount}}</p>", record.Metadata.TemplateSnapshot)
	assert.Nil(t, record.DeletedAt)

	assert.Equal(t, entity, record.ToEntity())
}

func TestDocumentIndexModels(t *testing.T) {
	t.Parallel()

	indexes := indexModels()
	require.Len(t, indexes, 3)

	for _, idx := range indexes {
		require.NotNil(t, idx.Options)
		require.NotNil(t, idx.Options.Name)
		assert.Contains(t, *idx.Options.Name, "idx_document_")
	}
}
