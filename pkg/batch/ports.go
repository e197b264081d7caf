// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package batch

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/resolver"

	"github.com/google/uuid"
)

// Resolver resolves the variables of one subject.
//
//go:generate mockgen --destination=ports.mock.go --package=batch --copyright_file=../../COPYRIGHT . DocumentStore PostProcessor Resolver
type Resolver interface {
	Resolve(ctx context.Context, documentType string, subject model.Subject) (resolver.Vars, error)
}

// DocumentStore persists generated documents.
// Save assigns the document id and timestamps when they are empty.
type DocumentStore interface {
	Save(ctx context.Context, doc *model.GeneratedDocument) error
	Get(ctx context.Context, id uuid.UUID) (*model.GeneratedDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*model.GeneratedDocument, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, update model.StatusUpdate) error
}

// PostProcessor runs after a document is saved, e.g. to render and upload its PDF.
// It returns the location of the produced artifact, or "" when there is none.
type PostProcessor interface {
	Process(ctx context.Context, doc *model.GeneratedDocument) (string, error)
}
