// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"errors"
	"testing"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefinition(t *testing.T) {
	t.Parallel()

	for _, docType := range DocumentTypes() {
		docType := docType
		t.Run(docType, func(t *testing.T) {
			t.Parallel()

			def, err := GetDefinition(docType)
			require.NoError(t, err)

			assert.Equal(t, docType, def.DocumentType)
			assert.NotEmpty(t, def.Description)
			assert.NotEmpty(t, def.RequiredVariables)

			seen := map[string]bool{}
			for _, name := range append(def.RequiredVariables, def.OptionalVariables...) {
				assert.False(t, seen[name], "variable %s listed twice", name)
				seen[name] = true
			}
		})
	}
}

func TestGetDefinition_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := GetDefinition("lease_contract")
	require.Error(t, err)

	assert.True(t, errors.Is(err, constant.ErrUnknownDocumentType))

	var typed pkg.UnknownDocumentTypeError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "lease_contract", typed.DocumentType)
}

func TestGetDefinition_ReturnsCopies(t *testing.T) {
	t.Parallel()

	def, err := GetDefinition(constant.DocumentTypeArrearsLetter)
	require.NoError(t, err)

	def.RequiredVariables[0] = "tampered"

	again, err := GetDefinition(constant.DocumentTypeArrearsLetter)
	require.NoError(t, err)
	assert.Equal(t, "memberName", again.RequiredVariables[0])
}

func TestDocumentTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		constant.DocumentTypeArrearsLetter,
		constant.DocumentTypeAssemblyNotice,
		constant.DocumentTypeFinancialReport,
		constant.DocumentTypeMinutesPDF,
		constant.DocumentTypeQuotaCertificate,
		constant.DocumentTypeReceipt,
	}, DocumentTypes())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	out, err := Describe(constant.DocumentTypeQuotaCertificate)
	require.NoError(t, err)

	require.NotEmpty(t, out.RequiredVariables)
	assert.Equal(t, "memberName", out.RequiredVariables[0].Name)
	assert.Equal(t, "Member name", out.RequiredVariables[0].Label)
	assert.True(t, out.RequiredVariables[0].Required)

	for _, v := range out.OptionalVariables {
		assert.False(t, v.Required)
	}

	_, err = Describe("nope")
	assert.ErrorIs(t, err, constant.ErrUnknownDocumentType)
}

func TestVariableType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"arrearAmount":  constant.VariableTypeCurrency,
		"validUntil":    constant.VariableTypeDate,
		"arrearsCount":  constant.VariableTypeNumber,
		"memberName":    constant.VariableTypeText,
		"depositAmount": constant.VariableTypeCurrency,
		"issueDate":     constant.VariableTypeDate,
		"unitCount":     constant.VariableTypeNumber,
		"hasGarage":     constant.VariableTypeBoolean,
		"isPaid":        constant.VariableTypeBoolean,
		"issuer":        constant.VariableTypeText,
	}

	for name, want := range tests {
		assert.Equal(t, want, VariableType(name), name)
	}
}

func TestLabel_FallsBackToRawName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amount owed", Label("arrearAmount"))
	assert.Equal(t, "customField", Label("customField"))
}
