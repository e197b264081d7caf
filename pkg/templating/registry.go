// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"slices"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
)

// Definition is the variable contract of one document type.
type Definition struct {
	DocumentType      string
	Description       string
	RequiredVariables []string
	OptionalVariables []string
}

var baseOptional = []string{
	"memberEmail", "memberPhone", "buildingAddress", "buildingPostalCode",
	"administratorName", "administratorContact", "currentDate",
}

var registry = map[string]Definition{
	constant.DocumentTypeArrearsLetter: {
		Description:       "Formal notice of outstanding quota payments owed by a member",
		RequiredVariables: []string{"memberName", "apartmentNumber", "buildingName", "arrearAmount", "arrearsCount"},
		OptionalVariables: append([]string{"oldestDueDate", "paymentInstructions"}, baseOptional...),
	},
	constant.DocumentTypeQuotaCertificate: {
		Description:       "Certificate stating whether a member is up to date with quota payments",
		RequiredVariables: []string{"memberName", "apartmentNumber", "buildingName", "quotaStatus", "validUntil"},
		OptionalVariables: append([]string{"quotaAmount", "certificateNumber"}, baseOptional...),
	},
	constant.DocumentTypeReceipt: {
		Description:       "Receipt for a payment made by a member",
		RequiredVariables: []string{"memberName", "apartmentNumber", "buildingName", "receiptNumber", "paymentAmount", "paymentDate"},
		OptionalVariables: append([]string{"paymentDescription", "paymentMethod"}, baseOptional...),
	},
	constant.DocumentTypeMinutesPDF: {
		Description:       "Minutes of a general assembly",
		RequiredVariables: []string{"buildingName", "meetingDate", "attendees", "decisions"},
		OptionalVariables: append([]string{"meetingLocation", "memberName", "apartmentNumber"}, baseOptional...),
	},
	constant.DocumentTypeAssemblyNotice: {
		Description:       "Convocation notice for a general assembly",
		RequiredVariables: []string{"buildingName", "meetingDate", "meetingTime", "meetingLocation", "agenda"},
		OptionalVariables: append([]string{"memberName", "apartmentNumber", "quorumRules", "legalReference", "secondCallTime"}, baseOptional...),
	},
	constant.DocumentTypeFinancialReport: {
		Description:       "Financial report of a building over a period",
		RequiredVariables: []string{"buildingName", "periodStart", "periodEnd", "totalIncome", "totalExpenses", "balance"},
		OptionalVariables: append([]string{"memberName", "apartmentNumber"}, baseOptional...),
	},
}

// GetDefinition returns the variable contract of a document type.
// The returned slices are copies and may be modified by the caller.
func GetDefinition(documentType string) (Definition, error) {
	def, ok := registry[documentType]
	if !ok {
		return Definition{}, pkg.UnknownDocumentTypeError{DocumentType: documentType}
	}

	return Definition{
		DocumentType:      documentType,
		Description:       def.Description,
		RequiredVariables: slices.Clone(def.RequiredVariables),
		OptionalVariables: slices.Clone(def.OptionalVariables),
	}, nil
}

// IsKnownDocumentType reports whether the registry has an entry for documentType.
func IsKnownDocumentType(documentType string) bool {
	_, ok := registry[documentType]
	return ok
}

// DocumentTypes returns every registered document type in a stable order.
func DocumentTypes() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

// Describe returns the public view of a registry entry with labels and value types.
func Describe(documentType string) (model.DocumentTypeDefinition, error) {
	def, err := GetDefinition(documentType)
	if err != nil {
		return model.DocumentTypeDefinition{}, err
	}

	out := model.DocumentTypeDefinition{
		DocumentType:      documentType,
		Description:       def.Description,
		RequiredVariables: make([]model.VariableDefinition, 0, len(def.RequiredVariables)),
		OptionalVariables: make([]model.VariableDefinition, 0, len(def.OptionalVariables)),
	}

	for _, name := range def.RequiredVariables {
		out.RequiredVariables = append(out.RequiredVariables, NewVariableDefinition(name, true))
	}

	for _, name := range def.OptionalVariables {
		out.OptionalVariables = append(out.OptionalVariables, NewVariableDefinition(name, false))
	}

	return out, nil
}
