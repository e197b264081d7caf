// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	"go.opentelemetry.io/otel/attribute"
)

// ExtractVariables lists the placeholders of content as variable definitions. With a
// document type, registry mismatches are reported as warnings.
func (uc *UseCase) ExtractVariables(ctx context.Context, input *model.ExtractVariablesInput) (*model.ExtractVariablesOutput, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	_, span := tracer.Start(ctx, "service.extract_variables")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_type", input.DocumentType),
	)

	out := &model.ExtractVariablesOutput{Variables: templating.ExtractVariables(input.Content)}

	if input.DocumentType == "" {
		return out, nil
	}

	warnings, err := templating.ValidateAgainstRegistry(input.DocumentType, input.Content)
	if err != nil {
		return nil, err
	}

	out.Warnings = warningsOrNil(warnings)

	return out, nil
}
