// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentTemplate(t *testing.T) {
	t.Parallel()

	validID := uuid.New()
	buildingID := uuid.New()

	tests := []struct {
		name        string
		id          uuid.UUID
		buildingID  uuid.UUID
		tplName     string
		docType     string
		variables   []VariableDefinition
		expectedErr error
	}{
		{
			name:       "valid template",
			id:         validID,
			buildingID: buildingID,
			tplName:    "Arrears",
			docType:    constant.DocumentTypeArrearsLetter,
			variables:  []VariableDefinition{{Name: "memberName"}, {Name: "arrearAmount"}},
		},
		{
			name:        "nil id",
			id:          uuid.Nil,
			buildingID:  buildingID,
			tplName:     "Arrears",
			docType:     constant.DocumentTypeArrearsLetter,
			expectedErr: constant.ErrMissingRequiredFields,
		},
		{
			name:        "nil building",
			id:          validID,
			buildingID:  uuid.Nil,
			tplName:     "Arrears",
			docType:     constant.DocumentTypeArrearsLetter,
			expectedErr: constant.ErrMissingRequiredFields,
		},
		{
			name:        "blank name",
			id:          validID,
			buildingID:  buildingID,
			tplName:     "   ",
			docType:     constant.DocumentTypeArrearsLetter,
			expectedErr: constant.ErrMissingRequiredFields,
		},
		{
			name:        "duplicate variable",
			id:          validID,
			buildingID:  buildingID,
			tplName:     "Arrears",
			docType:     constant.DocumentTypeArrearsLetter,
			variables:   []VariableDefinition{{Name: "memberName"}, {Name: "memberName"}},
			expectedErr: constant.ErrDuplicateVariableName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tpl, err := NewDocumentTemplate(tt.id, tt.buildingID, tt.tplName, tt.docType, "<p>{{memberName}}</p>", tt.variables)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, tpl)

				return
			}

			require.NoError(t, err)
			assert.True(t, tpl.IsActive)
			assert.Equal(t, 1, tpl.Version)
			assert.Equal(t, tpl.CreatedAt, tpl.UpdatedAt)
		})
	}
}

func TestGeneratedDocument_CanTransitionTo(t *testing.T) {
	t.Parallel()

	processing := &GeneratedDocument{Status: constant.DocumentStatusProcessing}
	assert.True(t, processing.CanTransitionTo(constant.DocumentStatusGenerated))
	assert.True(t, processing.CanTransitionTo(constant.DocumentStatusFailed))
	assert.False(t, processing.CanTransitionTo(constant.DocumentStatusProcessing))

	generated := &GeneratedDocument{Status: constant.DocumentStatusGenerated}
	assert.False(t, generated.CanTransitionTo(constant.DocumentStatusFailed))

	failed := &GeneratedDocument{Status: constant.DocumentStatusFailed}
	assert.False(t, failed.CanTransitionTo(constant.DocumentStatusGenerated))
}

func TestNewGeneratedDocument(t *testing.T) {
	t.Parallel()

	tpl := &DocumentTemplate{ID: uuid.New(), DocumentType: constant.DocumentTypeReceipt}

	doc, err := NewGeneratedDocument(tpl, uuid.New(), "Receipt", "<p>ok</p>", constant.DocumentStatusGenerated, DocumentMetadata{})
	require.NoError(t, err)
	assert.Equal(t, constant.DocumentTypeReceipt, doc.Type)
	assert.Equal(t, uuid.Nil, doc.ID)

	_, err = NewGeneratedDocument(tpl, uuid.New(), "Receipt", "", constant.DocumentStatusFailed, DocumentMetadata{})
	assert.ErrorIs(t, err, constant.ErrBadRequest)

	_, err = NewGeneratedDocument(nil, uuid.New(), "Receipt", "", constant.DocumentStatusGenerated, DocumentMetadata{})
	assert.ErrorIs(t, err, constant.ErrMissingRequiredFields)
}

func TestArrear_Outstanding(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("10.00")

	assert.True(t, Arrear{Amount: amount, Status: constant.ArrearStatusPending}.Outstanding())
	assert.True(t, Arrear{Amount: amount, Status: constant.ArrearStatusOverdue}.Outstanding())
	assert.True(t, Arrear{Amount: amount, Status: ""}.Outstanding())
	assert.False(t, Arrear{Amount: amount, Status: constant.ArrearStatusResolved}.Outstanding())
}

func TestTemplateWarnings_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, TemplateWarnings{}.Empty())
	assert.False(t, TemplateWarnings{UnknownVariables: []string{"foo"}}.Empty())
}
