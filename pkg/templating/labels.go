// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"strings"
	"unicode"

	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
)

var labels = map[string]string{
	"memberName":           "Member name",
	"apartmentNumber":      "Apartment",
	"memberEmail":          "Member email",
	"memberPhone":          "Member phone",
	"buildingName":         "Building name",
	"buildingAddress":      "Building address",
	"buildingPostalCode":   "Postal code",
	"administratorName":    "Administrator",
	"administratorContact": "Administrator contact",
	"currentDate":          "Current date",
	"arrearAmount":         "Amount owed",
	"arrearsCount":         "Number of arrears",
	"oldestDueDate":        "Oldest due date",
	"paymentInstructions":  "Payment instructions",
	"quotaStatus":          "Quota status",
	"quotaAmount":          "Quota amount",
	"validUntil":           "Valid until",
	"certificateNumber":    "Certificate number",
	"receiptNumber":        "Receipt number",
	"paymentAmount":        "Payment amount",
	"paymentDate":          "Payment date",
	"paymentDescription":   "Payment description",
	"paymentMethod":        "Payment method",
	"meetingDate":          "Meeting date",
	"meetingTime":          "Meeting time",
	"secondCallTime":       "Second call time",
	"meetingLocation":      "Meeting location",
	"agenda":               "Agenda",
	"attendees":            "Attendees",
	"decisions":            "Decisions",
	"quorumRules":          "Quorum rules",
	"legalReference":       "Legal reference",
	"periodStart":          "Period start",
	"periodEnd":            "Period end",
	"totalIncome":          "Total income",
	"totalExpenses":        "Total expenses",
	"balance":              "Balance",
}

var types = map[string]string{
	"arrearsCount":  constant.VariableTypeNumber,
	"currentDate":   constant.VariableTypeDate,
	"oldestDueDate": constant.VariableTypeDate,
	"validUntil":    constant.VariableTypeDate,
	"paymentDate":   constant.VariableTypeDate,
	"meetingDate":   constant.VariableTypeDate,
	"periodStart":   constant.VariableTypeDate,
	"periodEnd":     constant.VariableTypeDate,
	"arrearAmount":  constant.VariableTypeCurrency,
	"quotaAmount":   constant.VariableTypeCurrency,
	"paymentAmount": constant.VariableTypeCurrency,
	"totalIncome":   constant.VariableTypeCurrency,
	"totalExpenses": constant.VariableTypeCurrency,
	"balance":       constant.VariableTypeCurrency,
}

// Label returns the display label of a variable, or the raw name when none is known.
func Label(name string) string {
	if label, ok := labels[name]; ok {
		return label
	}

	return name
}

// VariableType returns the value type of a variable. Unknown names are guessed
// from their suffix and default to text.
func VariableType(name string) string {
	if t, ok := types[name]; ok {
		return t
	}

	switch {
	case strings.HasSuffix(name, "Amount"), strings.HasSuffix(name, "Total"):
		return constant.VariableTypeCurrency
	case strings.HasSuffix(name, "Date"):
		return constant.VariableTypeDate
	case strings.HasSuffix(name, "Count"):
		return constant.VariableTypeNumber
	case isPredicate(name, "is"), isPredicate(name, "has"):
		return constant.VariableTypeBoolean
	default:
		return constant.VariableTypeText
	}
}

// isPredicate matches camelCase names such as isPaid or hasGarage.
func isPredicate(name, prefix string) bool {
	return len(name) > len(prefix) && strings.HasPrefix(name, prefix) &&
		unicode.IsUpper(rune(name[len(prefix)]))
}

// NewVariableDefinition builds the definition of a variable from the static dictionaries.
func NewVariableDefinition(name string, required bool) model.VariableDefinition {
	return model.VariableDefinition{
		Name:     name,
		Label:    Label(name),
		Type:     VariableType(name),
		Required: required,
	}
}
