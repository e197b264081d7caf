// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Member is a condominium member as read from the directory.
type Member struct {
	ID         uuid.UUID
	BuildingID uuid.UUID
	Name       string
	Apartment  string
	Email      string
	Phone      string
}

// Building is a managed building as read from the directory.
type Building struct {
	ID                 uuid.UUID
	Name               string
	Address            string
	PostalCode         string
	AdministratorName  string
	AdministratorEmail string
	AdministratorPhone string
	IBAN               string
	BaseQuota          decimal.Decimal
	Currency           string
}

// Arrear is an amount owed by a member.
type Arrear struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	Amount   decimal.Decimal
	DueDate  time.Time
	Status   string
}

// Outstanding reports whether the arrear still counts against the member.
func (a Arrear) Outstanding() bool {
	return a.Status != constant.ArrearStatusResolved
}

// Subject identifies the member, and optionally the building, a document targets.
// A nil BuildingID means the member's own building. Overrides carry caller-supplied
// values for fields that cannot be derived from the directory (meeting date, agenda...).
type Subject struct {
	MemberID   uuid.UUID         `json:"memberId" validate:"required"`
	BuildingID uuid.UUID         `json:"buildingId,omitempty"`
	Overrides  map[string]string `json:"overrides,omitempty"`
}
