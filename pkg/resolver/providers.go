// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/google/uuid"
)

// MemberProvider dereferences member ids.
// Implementations return an error wrapping constant.ErrEntityNotFound when the member does not exist.
type MemberProvider interface {
	GetMember(ctx context.Context, id uuid.UUID) (*model.Member, error)
}

// BuildingProvider dereferences building ids.
// Implementations return an error wrapping constant.ErrEntityNotFound when the building does not exist.
type BuildingProvider interface {
	GetBuilding(ctx context.Context, id uuid.UUID) (*model.Building, error)
}

// ArrearsProvider lists the arrears of every member of a building.
type ArrearsProvider interface {
	GetArrears(ctx context.Context, buildingID uuid.UUID) ([]model.Arrear, error)
}

// Directory is the member, building and arrears data the resolver reads from.
//
//go:generate mockgen --destination=providers.mock.go --package=resolver --copyright_file=../../COPYRIGHT . Directory
type Directory interface {
	MemberProvider
	BuildingProvider
	ArrearsProvider
}
