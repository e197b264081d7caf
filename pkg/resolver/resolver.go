// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// Resolver computes the variable values of a document for one subject.
// It reads the directory on every call and keeps no state between calls.
type Resolver struct {
	Directory Directory
	Format    *Formatter

	// Now is the generation clock. Defaults to time.Now.
	Now func() time.Time
}

// New returns a resolver reading from directory and formatting for locale.
func New(directory Directory, locale string) *Resolver {
	return &Resolver{
		Directory: directory,
		Format:    NewFormatter(locale),
		Now:       time.Now,
	}
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}

	return r.Now()
}

func (r *Resolver) formatter() *Formatter {
	if r.Format == nil {
		return NewFormatter("en")
	}

	return r.Format
}

// Resolve computes every variable a template of documentType may reference for subject.
// It fails with pkg.UnknownDocumentTypeError for an unregistered type and with
// pkg.SubjectNotFoundError when the subject cannot be dereferenced to a member and
// building pair. Missing optional data never fails; it resolves to "".
func (r *Resolver) Resolve(ctx context.Context, documentType string, subject model.Subject) (Vars, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "resolver.resolve")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.document.type", documentType),
		attribute.String("app.subject.member_id", subject.MemberID.String()),
	)

	if !templating.IsKnownDocumentType(documentType) {
		return nil, pkg.UnknownDocumentTypeError{DocumentType: documentType}
	}

	member, building, err := r.dereference(ctx, subject)
	if err != nil {
		return nil, err
	}

	now := r.now()
	base := r.base(member, building, now)
	overrides := subject.Overrides

	switch documentType {
	case constant.DocumentTypeArrearsLetter:
		outstanding, err := r.outstandingArrears(ctx, member)
		if err != nil {
			return nil, err
		}

		return r.arrearsLetter(base, member, building, outstanding), nil

	case constant.DocumentTypeQuotaCertificate:
		outstanding, err := r.outstandingArrears(ctx, member)
		if err != nil {
			return nil, err
		}

		return r.quotaCertificate(base, member, building, outstanding, now), nil

	case constant.DocumentTypeAssemblyNotice:
		return AssemblyNoticeVars{
			BaseVars:        base,
			QuorumRules:     quorumRules,
			LegalReference:  legalReference,
			MeetingDate:     overrides["meetingDate"],
			MeetingTime:     overrides["meetingTime"],
			SecondCallTime:  overrides["secondCallTime"],
			MeetingLocation: overrides["meetingLocation"],
			Agenda:          overrides["agenda"],
		}, nil

	case constant.DocumentTypeReceipt:
		return ReceiptVars{
			BaseVars:           base,
			ReceiptNumber:      overrides["receiptNumber"],
			PaymentAmount:      r.money(overrides["paymentAmount"], building.Currency),
			PaymentDate:        overrides["paymentDate"],
			PaymentDescription: overrides["paymentDescription"],
			PaymentMethod:      overrides["paymentMethod"],
		}, nil

	case constant.DocumentTypeMinutesPDF:
		return MinutesVars{
			BaseVars:        base,
			MeetingDate:     overrides["meetingDate"],
			MeetingLocation: overrides["meetingLocation"],
			Attendees:       overrides["attendees"],
			Decisions:       overrides["decisions"],
		}, nil

	case constant.DocumentTypeFinancialReport:
		return FinancialReportVars{
			BaseVars:      base,
			PeriodStart:   overrides["periodStart"],
			PeriodEnd:     overrides["periodEnd"],
			TotalIncome:   r.money(overrides["totalIncome"], building.Currency),
			TotalExpenses: r.money(overrides["totalExpenses"], building.Currency),
			Balance:       r.money(overrides["balance"], building.Currency),
		}, nil
	}

	return nil, pkg.UnknownDocumentTypeError{DocumentType: documentType}
}

// ResolveValues is Resolve flattened into the map consumed by templating.Render.
func (r *Resolver) ResolveValues(ctx context.Context, documentType string, subject model.Subject) (map[string]string, error) {
	vars, err := r.Resolve(ctx, documentType, subject)
	if err != nil {
		return nil, err
	}

	return vars.Values(), nil
}

// dereference loads the member and building of subject. A nil subject building means
// the member's own building; a building that does not own the member is not a valid pair.
func (r *Resolver) dereference(ctx context.Context, subject model.Subject) (*model.Member, *model.Building, error) {
	notFound := func(buildingID uuid.UUID, cause error) error {
		return pkg.SubjectNotFoundError{
			MemberID:   subject.MemberID.String(),
			BuildingID: buildingID.String(),
			Err:        cause,
		}
	}

	if subject.MemberID == uuid.Nil {
		return nil, nil, notFound(subject.BuildingID, errors.New("empty member id"))
	}

	member, err := r.Directory.GetMember(ctx, subject.MemberID)
	if err != nil {
		if errors.Is(err, constant.ErrEntityNotFound) {
			return nil, nil, notFound(subject.BuildingID, err)
		}

		return nil, nil, fmt.Errorf("get member %s: %w", subject.MemberID, err)
	}

	if member == nil {
		return nil, nil, notFound(subject.BuildingID, nil)
	}

	buildingID := subject.BuildingID
	if buildingID == uuid.Nil {
		buildingID = member.BuildingID
	}

	if buildingID != member.BuildingID {
		return nil, nil, notFound(buildingID, fmt.Errorf("member belongs to building %s", member.BuildingID))
	}

	building, err := r.Directory.GetBuilding(ctx, buildingID)
	if err != nil {
		if errors.Is(err, constant.ErrEntityNotFound) {
			return nil, nil, notFound(buildingID, err)
		}

		return nil, nil, fmt.Errorf("get building %s: %w", buildingID, err)
	}

	if building == nil {
		return nil, nil, notFound(buildingID, nil)
	}

	return member, building, nil
}

func (r *Resolver) base(member *model.Member, building *model.Building, now time.Time) BaseVars {
	return BaseVars{
		MemberName:           member.Name,
		ApartmentNumber:      member.Apartment,
		MemberEmail:          member.Email,
		MemberPhone:          member.Phone,
		BuildingName:         building.Name,
		BuildingAddress:      building.Address,
		BuildingPostalCode:   building.PostalCode,
		AdministratorName:    building.AdministratorName,
		AdministratorContact: administratorContact(building),
		CurrentDate:          r.formatter().Date(now),
	}
}

// outstandingArrears returns the non-resolved arrears of member, read fresh from the directory.
func (r *Resolver) outstandingArrears(ctx context.Context, member *model.Member) ([]model.Arrear, error) {
	arrears, err := r.Directory.GetArrears(ctx, member.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("get arrears of building %s: %w", member.BuildingID, err)
	}

	outstanding := make([]model.Arrear, 0, len(arrears))

	for _, a := range arrears {
		if a.MemberID == member.ID && a.Outstanding() {
			outstanding = append(outstanding, a)
		}
	}

	return outstanding, nil
}

func (r *Resolver) arrearsLetter(base BaseVars, member *model.Member, building *model.Building, outstanding []model.Arrear) ArrearsLetterVars {
	f := r.formatter()
	total := decimal.Zero

	var oldest time.Time

	for _, a := range outstanding {
		total = total.Add(a.Amount)

		if oldest.IsZero() || a.DueDate.Before(oldest) {
			oldest = a.DueDate
		}
	}

	amount := f.Currency(total, building.Currency)

	return ArrearsLetterVars{
		BaseVars:            base,
		ArrearAmount:        amount,
		ArrearsCount:        len(outstanding),
		ArrearsCountText:    f.Integer(len(outstanding)),
		OldestDueDate:       f.Date(oldest),
		PaymentInstructions: paymentInstructions(building, member, amount),
	}
}

func (r *Resolver) quotaCertificate(base BaseVars, member *model.Member, building *model.Building, outstanding []model.Arrear, now time.Time) QuotaCertificateVars {
	f := r.formatter()

	status := constant.QuotaStatusGoodStanding
	if len(outstanding) > 0 {
		status = constant.QuotaStatusPendingDues
	}

	return QuotaCertificateVars{
		BaseVars:          base,
		QuotaStatus:       status,
		HasPendingDues:    len(outstanding) > 0,
		ValidUntil:        f.Date(now.AddDate(0, 0, constant.QuotaCertificateValidityDays)),
		QuotaAmount:       f.Currency(building.BaseQuota, building.Currency),
		CertificateNumber: certificateNumber(member, now),
	}
}

// money formats a caller-supplied amount as currency. Values that are not numbers are kept verbatim.
func (r *Resolver) money(raw, currencyCode string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}

	return r.formatter().Currency(amount, currencyCode)
}

func administratorContact(building *model.Building) string {
	switch {
	case building.AdministratorEmail != "" && building.AdministratorPhone != "":
		return building.AdministratorEmail + " / " + building.AdministratorPhone
	case building.AdministratorEmail != "":
		return building.AdministratorEmail
	default:
		return building.AdministratorPhone
	}
}

func paymentInstructions(building *model.Building, member *model.Member, amount string) string {
	if building.IBAN != "" {
		return fmt.Sprintf("Please transfer %s to IBAN %s, using apartment %s as the payment reference.",
			amount, building.IBAN, member.Apartment)
	}

	if contact := administratorContact(building); contact != "" {
		return fmt.Sprintf("Please contact the building administration (%s) to arrange payment.", contact)
	}

	return paymentFallback
}

func certificateNumber(member *model.Member, now time.Time) string {
	id := strings.ReplaceAll(member.ID.String(), "-", "")

	return fmt.Sprintf("QC-%s-%s", now.Format("20060102"), strings.ToUpper(id[:8]))
}

// Render renders content with the values of vars.
func Render(content string, vars Vars) string {
	return templating.Render(content, vars.Values())
}
