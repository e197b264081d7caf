// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const directorySchema = `
CREATE TABLE buildings (
	id uuid PRIMARY KEY,
	name text NOT NULL,
	address text,
	postal_code text,
	administrator_name text,
	administrator_email text,
	administrator_phone text,
	iban text,
	base_quota numeric(12,2) NOT NULL DEFAULT 0,
	currency text,
	deleted_at timestamptz
);
CREATE TABLE members (
	id uuid PRIMARY KEY,
	building_id uuid NOT NULL REFERENCES buildings(id),
	name text NOT NULL,
	apartment text NOT NULL,
	email text,
	phone text,
	deleted_at timestamptz
);
CREATE TABLE arrears (
	id uuid PRIMARY KEY,
	member_id uuid NOT NULL REFERENCES members(id),
	amount numeric(12,2) NOT NULL,
	due_date date NOT NULL,
	status text NOT NULL,
	deleted_at timestamptz
);`

func startPostgres(t *testing.T) *Connection {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "condo",
				"POSTGRES_PASSWORD": "condo",
				"POSTGRES_DB":       "directory",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	conn := &Connection{
		ConnectionString:   fmt.Sprintf("postgres://condo:condo@%s:%s/directory?sslmode=disable", host, port.Port()),
		DBName:             "directory",
		Logger:             &log.NoneLogger{},
		MaxOpenConnections: constant.PostgresMaxOpenConns,
		MaxIdleConnections: constant.PostgresMaxIdleConns,
	}

	db, err := conn.GetDB(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, directorySchema)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestDirectoryPostgreSQLRepository(t *testing.T) {
	conn := startPostgres(t)
	ctx := context.Background()

	db, err := conn.GetDB(ctx)
	require.NoError(t, err)

	buildingID := uuid.New()
	joao := uuid.New()
	maria := uuid.New()
	gone := uuid.New()

	_, err = db.ExecContext(ctx,
		`INSERT INTO buildings (id, name, address, iban, base_quota, currency) VALUES ($1, 'Edifício Aurora', 'Rua das Flores 12', 'PT50000201231234567890154', 85.50, 'EUR')`,
		buildingID)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO members (id, building_id, name, apartment, email) VALUES ($1, $4, 'João Silva', '3B', 'joao@example.com'), ($2, $4, 'Maria Costa', '1A', NULL), ($3, $4, 'Old Owner', '2C', NULL)`,
		joao, maria, gone, buildingID)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `UPDATE members SET deleted_at = now() WHERE id = $1`, gone)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO arrears (id, member_id, amount, due_date, status) VALUES ($1, $3, 120.00, '2024-01-10', 'overdue'), ($2, $3, 40.00, '2023-11-10', 'resolved')`,
		uuid.New(), uuid.New(), joao)
	require.NoError(t, err)

	repo, err := NewDirectoryRepository(conn)
	require.NoError(t, err)
	require.NoError(t, repo.Ping(ctx))

	member, err := repo.GetMember(ctx, joao)
	require.NoError(t, err)
	assert.Equal(t, "João Silva", member.Name)
	assert.Equal(t, buildingID, member.BuildingID)
	assert.Empty(t, member.Phone)

	_, err = repo.GetMember(ctx, gone)
	assert.True(t, errors.Is(err, constant.ErrEntityNotFound))

	_, err = repo.GetMember(ctx, uuid.New())
	assert.True(t, errors.Is(err, constant.ErrEntityNotFound))

	building, err := repo.GetBuilding(ctx, buildingID)
	require.NoError(t, err)
	assert.Equal(t, "Edifício Aurora", building.Name)
	assert.True(t, decimal.RequireFromString("85.5").Equal(building.BaseQuota))
	assert.Equal(t, "EUR", building.Currency)
	assert.Empty(t, building.PostalCode)

	_, err = repo.GetBuilding(ctx, uuid.New())
	assert.True(t, errors.Is(err, constant.ErrEntityNotFound))

	arrears, err := repo.GetArrears(ctx, buildingID)
	require.NoError(t, err)
	require.Len(t, arrears, 2)
	assert.Equal(t, "resolved", arrears[0].Status)
	assert.True(t, decimal.RequireFromString("120").Equal(arrears[1].Amount))
	assert.Equal(t, time.January, arrears[1].DueDate.Month())

	members, err := repo.FindMembers(ctx, []uuid.UUID{joao, maria, gone, uuid.New()})
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "1A", members[0].Apartment)
	assert.Equal(t, "3B", members[1].Apartment)
}
