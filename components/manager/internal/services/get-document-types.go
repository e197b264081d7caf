// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/templating"
)

// GetDocumentTypes describes every registered document type.
func (uc *UseCase) GetDocumentTypes(ctx context.Context) ([]model.DocumentTypeDefinition, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "service.get_document_types")
	defer span.End()

	types := templating.DocumentTypes()
	out := make([]model.DocumentTypeDefinition, 0, len(types))

	for _, documentType := range types {
		def, err := templating.Describe(documentType)
		if err != nil {
			return nil, err
		}

		out = append(out, def)
	}

	return out, nil
}

// GetDocumentTypeVariables describes the variables of one document type.
func (uc *UseCase) GetDocumentTypeVariables(ctx context.Context, documentType string) (*model.DocumentTypeDefinition, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "service.get_document_type_variables")
	defer span.End()

	def, err := templating.Describe(documentType)
	if err != nil {
		return nil, err
	}

	return &def, nil
}
