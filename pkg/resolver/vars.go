// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

import (
	"github.com/LerianStudio/condo-docs/pkg/constant"
)

// Vars is the resolved variable set of one document type. Each document type has
// its own closed record; Values flattens it into the map the renderer consumes.
type Vars interface {
	DocumentType() string
	Values() map[string]string
}

// BaseVars are resolved for every document type. Missing directory data resolves to "".
type BaseVars struct {
	MemberName           string
	ApartmentNumber      string
	MemberEmail          string
	MemberPhone          string
	BuildingName         string
	BuildingAddress      string
	BuildingPostalCode   string
	AdministratorName    string
	AdministratorContact string
	CurrentDate          string
}

func (b BaseVars) values() map[string]string {
	return map[string]string{
		"memberName":           b.MemberName,
		"apartmentNumber":      b.ApartmentNumber,
		"memberEmail":          b.MemberEmail,
		"memberPhone":          b.MemberPhone,
		"buildingName":         b.BuildingName,
		"buildingAddress":      b.BuildingAddress,
		"buildingPostalCode":   b.BuildingPostalCode,
		"administratorName":    b.AdministratorName,
		"administratorContact": b.AdministratorContact,
		"currentDate":          b.CurrentDate,
	}
}

// setSupplied adds caller-supplied fields only when a value was given, so an
// unsupplied field keeps rendering as a visible [name] placeholder.
func setSupplied(values map[string]string, name, value string) {
	if value != "" {
		values[name] = value
	}
}

// ArrearsLetterVars carries the outstanding debt of a member.
type ArrearsLetterVars struct {
	BaseVars
	ArrearAmount        string
	ArrearsCount        int
	ArrearsCountText    string
	OldestDueDate       string
	PaymentInstructions string
}

func (ArrearsLetterVars) DocumentType() string { return constant.DocumentTypeArrearsLetter }

func (v ArrearsLetterVars) Values() map[string]string {
	values := v.values()
	values["arrearAmount"] = v.ArrearAmount
	values["arrearsCount"] = v.ArrearsCountText
	values["oldestDueDate"] = v.OldestDueDate
	values["paymentInstructions"] = v.PaymentInstructions

	return values
}

// QuotaCertificateVars states whether a member is up to date with quotas.
type QuotaCertificateVars struct {
	BaseVars
	QuotaStatus       string
	HasPendingDues    bool
	ValidUntil        string
	QuotaAmount       string
	CertificateNumber string
}

func (QuotaCertificateVars) DocumentType() string { return constant.DocumentTypeQuotaCertificate }

func (v QuotaCertificateVars) Values() map[string]string {
	values := v.values()
	values["quotaStatus"] = v.QuotaStatus
	values["validUntil"] = v.ValidUntil
	values["quotaAmount"] = v.QuotaAmount
	values["certificateNumber"] = v.CertificateNumber

	return values
}

// AssemblyNoticeVars convenes a general assembly. Meeting fields come from the caller.
type AssemblyNoticeVars struct {
	BaseVars
	QuorumRules     string
	LegalReference  string
	MeetingDate     string
	MeetingTime     string
	SecondCallTime  string
	MeetingLocation string
	Agenda          string
}

func (AssemblyNoticeVars) DocumentType() string { return constant.DocumentTypeAssemblyNotice }

func (v AssemblyNoticeVars) Values() map[string]string {
	values := v.values()
	values["quorumRules"] = v.QuorumRules
	values["legalReference"] = v.LegalReference
	setSupplied(values, "meetingDate", v.MeetingDate)
	setSupplied(values, "meetingTime", v.MeetingTime)
	setSupplied(values, "secondCallTime", v.SecondCallTime)
	setSupplied(values, "meetingLocation", v.MeetingLocation)
	setSupplied(values, "agenda", v.Agenda)

	return values
}

// ReceiptVars acknowledges a payment. Payment fields come from the caller.
type ReceiptVars struct {
	BaseVars
	ReceiptNumber      string
	PaymentAmount      string
	PaymentDate        string
	PaymentDescription string
	PaymentMethod      string
}

func (ReceiptVars) DocumentType() string { return constant.DocumentTypeReceipt }

func (v ReceiptVars) Values() map[string]string {
	values := v.values()
	setSupplied(values, "receiptNumber", v.ReceiptNumber)
	setSupplied(values, "paymentAmount", v.PaymentAmount)
	setSupplied(values, "paymentDate", v.PaymentDate)
	setSupplied(values, "paymentDescription", v.PaymentDescription)
	setSupplied(values, "paymentMethod", v.PaymentMethod)

	return values
}

// MinutesVars records an assembly that took place. Meeting fields come from the caller.
type MinutesVars struct {
	BaseVars
	MeetingDate     string
	MeetingLocation string
	Attendees       string
	Decisions       string
}

func (MinutesVars) DocumentType() string { return constant.DocumentTypeMinutesPDF }

func (v MinutesVars) Values() map[string]string {
	values := v.values()
	setSupplied(values, "meetingDate", v.MeetingDate)
	setSupplied(values, "meetingLocation", v.MeetingLocation)
	setSupplied(values, "attendees", v.Attendees)
	setSupplied(values, "decisions", v.Decisions)

	return values
}

// FinancialReportVars summarises a period. Figures come from the caller.
type FinancialReportVars struct {
	BaseVars
	PeriodStart   string
	PeriodEnd     string
	TotalIncome   string
	TotalExpenses string
	Balance       string
}

func (FinancialReportVars) DocumentType() string { return constant.DocumentTypeFinancialReport }

func (v FinancialReportVars) Values() map[string]string {
	values := v.values()
	setSupplied(values, "periodStart", v.PeriodStart)
	setSupplied(values, "periodEnd", v.PeriodEnd)
	setSupplied(values, "totalIncome", v.TotalIncome)
	setSupplied(values, "totalExpenses", v.TotalExpenses)
	setSupplied(values, "balance", v.Balance)

	return values
}
