// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/resolver"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

const (
	tableBuildings = "buildings"
	tableMembers   = "members"
	tableArrears   = "arrears"
)

var (
	buildingColumns = []string{
		"id", "name", "address", "postal_code",
		"administrator_name", "administrator_email", "administrator_phone",
		"iban", "base_quota", "currency",
	}
	memberColumns  = []string{"id", "building_id", "name", "apartment", "email", "phone"}
	arrearsColumns = []string{"a.id", "a.member_id", "a.amount", "a.due_date", "a.status"}
)

// DirectoryRepository reads members, buildings and arrears from PostgreSQL.
//
//go:generate mockgen --destination=directory.postgres.mock.go --package=postgres --copyright_file=../../COPYRIGHT . DirectoryRepository
type DirectoryRepository interface {
	resolver.Directory
	FindMembers(ctx context.Context, ids []uuid.UUID) ([]*model.Member, error)
	Ping(ctx context.Context) error
}

// DirectoryPostgreSQLRepository is the PostgreSQL implementation of DirectoryRepository.
// Rows with a non-null deleted_at are invisible.
type DirectoryPostgreSQLRepository struct {
	connection *Connection
	psql       squirrel.StatementBuilderType
}

// Compile-time interface satisfaction check.
var _ DirectoryRepository = (*DirectoryPostgreSQLRepository)(nil)

// NewDirectoryRepository returns a DirectoryPostgreSQLRepository, connecting eagerly.
func NewDirectoryRepository(pc *Connection) (*DirectoryPostgreSQLRepository, error) {
	r := &DirectoryPostgreSQLRepository{
		connection: pc,
		psql:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	if _, err := pc.GetDB(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to establish PostgreSQL connection: %w", err)
	}

	return r, nil
}

// Ping checks that the database answers.
func (r *DirectoryPostgreSQLRepository) Ping(ctx context.Context) error {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return err
	}

	return db.PingContext(ctx)
}

func (r *DirectoryPostgreSQLRepository) memberQuery() squirrel.SelectBuilder {
	return r.psql.Select(memberColumns...).
		From(tableMembers).
		Where(squirrel.Eq{"deleted_at": nil})
}

func (r *DirectoryPostgreSQLRepository) buildingQuery(id uuid.UUID) squirrel.SelectBuilder {
	return r.psql.Select(buildingColumns...).
		From(tableBuildings).
		Where(squirrel.Eq{"id": id.String(), "deleted_at": nil})
}

func (r *DirectoryPostgreSQLRepository) arrearsQuery(buildingID uuid.UUID) squirrel.SelectBuilder {
	return r.psql.Select(arrearsColumns...).
		From(tableArrears + " a").
		Join(tableMembers + " m ON m.id = a.member_id").
		Where(squirrel.Eq{"m.building_id": buildingID.String(), "a.deleted_at": nil}).
		OrderBy("a.due_date ASC", "a.id ASC")
}

// GetMember returns a member, or an error wrapping constant.ErrEntityNotFound.
func (r *DirectoryPostgreSQLRepository) GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.directory.get_member")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.member_id", id.String()),
	)

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	query, args, err := r.memberQuery().Where(squirrel.Eq{"id": id.String()}).ToSql()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to build member query", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QueryTimeout)
	defer cancel()

	member, err := scanMember(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %s: %w", id, constant.ErrEntityNotFound)
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to query member", err)

		return nil, err
	}

	return member, nil
}

// FindMembers returns the members among ids that exist. Unknown ids are skipped.
func (r *DirectoryPostgreSQLRepository) FindMembers(ctx context.Context, ids []uuid.UUID) ([]*model.Member, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.directory.find_members")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.Int("app.request.member_count", len(ids)),
	)

	if len(ids) == 0 {
		return []*model.Member{}, nil
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	query, args, err := r.memberQuery().
		Where("id = ANY(?::uuid[])", pq.Array(uuidStrings(ids))).
		OrderBy("apartment ASC", "name ASC").
		ToSql()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to build members query", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QueryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to query members", err)
		return nil, err
	}
	defer rows.Close()

	members := make([]*model.Member, 0, len(ids))

	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to scan member", err)
			return nil, err
		}

		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate members", err)
		return nil, err
	}

	return members, nil
}

// GetBuilding returns a building, or an error wrapping constant.ErrEntityNotFound.
func (r *DirectoryPostgreSQLRepository) GetBuilding(ctx context.Context, id uuid.UUID) (*model.Building, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.directory.get_building")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.building_id", id.String()),
	)

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	query, args, err := r.buildingQuery(id).ToSql()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to build building query", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QueryTimeout)
	defer cancel()

	var (
		b                                  model.Building
		address, postalCode, adminName     sql.NullString
		adminEmail, adminPhone, iban, curr sql.NullString
	)

	err = db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.Name, &address, &postalCode,
		&adminName, &adminEmail, &adminPhone,
		&iban, &b.BaseQuota, &curr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("building %s: %w", id, constant.ErrEntityNotFound)
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to query building", err)

		return nil, err
	}

	b.Address = address.String
	b.PostalCode = postalCode.String
	b.AdministratorName = adminName.String
	b.AdministratorEmail = adminEmail.String
	b.AdministratorPhone = adminPhone.String
	b.IBAN = iban.String
	b.Currency = curr.String

	return &b, nil
}

// GetArrears lists every arrear of the members of a building, including resolved ones.
func (r *DirectoryPostgreSQLRepository) GetArrears(ctx context.Context, buildingID uuid.UUID) ([]model.Arrear, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.directory.get_arrears")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.building_id", buildingID.String()),
	)

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get database", err)
		return nil, err
	}

	query, args, err := r.arrearsQuery(buildingID).ToSql()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to build arrears query", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QueryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to query arrears", err)
		return nil, err
	}
	defer rows.Close()

	arrears := make([]model.Arrear, 0)

	for rows.Next() {
		var a model.Arrear
		if err := rows.Scan(&a.ID, &a.MemberID, &a.Amount, &a.DueDate, &a.Status); err != nil {
			libOpentelemetry.HandleSpanError(&span, "Failed to scan arrear", err)
			return nil, err
		}

		arrears = append(arrears, a)
	}

	if err := rows.Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to iterate arrears", err)
		return nil, err
	}

	return arrears, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*model.Member, error) {
	var (
		m            model.Member
		email, phone sql.NullString
	)

	if err := row.Scan(&m.ID, &m.BuildingID, &m.Name, &m.Apartment, &email, &phone); err != nil {
		return nil, err
	}

	m.Email = email.String
	m.Phone = phone.String

	return &m, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
