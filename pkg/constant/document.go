// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

// Document types known to the variable registry.
const (
	DocumentTypeArrearsLetter    = "arrears_letter"
	DocumentTypeQuotaCertificate = "quota_certificate"
	DocumentTypeReceipt          = "receipt"
	DocumentTypeMinutesPDF       = "minutes_pdf"
	DocumentTypeAssemblyNotice   = "assembly_notice"
	DocumentTypeFinancialReport  = "financial_report"
)

// Generated document statuses.
const (
	DocumentStatusGenerated  = "generated"
	DocumentStatusProcessing = "processing"
	DocumentStatusFailed     = "failed"
)

// Delivery intents of a batch.
const (
	SendMethodDownload = "download"
	SendMethodEmail    = "email"
	SendMethodPrint    = "print"
)

// Variable value types.
const (
	VariableTypeText     = "text"
	VariableTypeNumber   = "number"
	VariableTypeDate     = "date"
	VariableTypeCurrency = "currency"
	VariableTypeBoolean  = "boolean"
)

// Arrear statuses. Anything other than resolved counts as outstanding.
const (
	ArrearStatusPending  = "pending"
	ArrearStatusOverdue  = "overdue"
	ArrearStatusResolved = "resolved"
)

// Quota status strings emitted on quota certificates.
const (
	QuotaStatusGoodStanding = "in good standing"
	QuotaStatusPendingDues  = "has pending dues"
)

// QuotaCertificateValidityDays is the validity window of a quota certificate from its generation date.
const QuotaCertificateValidityDays = 90

// DefaultCurrencySymbol is used when a building does not declare its own currency.
const DefaultCurrencySymbol = "€"
