// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateTemplateByID applies the non-nil fields of input and bumps the template version.
// A content change without explicit variables re-extracts them. Documents already
// generated keep the snapshot of the version they were rendered from.
func (uc *UseCase) UpdateTemplateByID(ctx context.Context, id uuid.UUID, input *model.UpdateTemplateInput) (*model.TemplateOutput, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.update_template_by_id")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	tpl, err := uc.TemplateRepo.FindByID(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get template on repo by id", err)

		return nil, err
	}

	if input.Name != nil {
		tpl.Name = *input.Name
	}

	if input.Content != nil {
		tpl.Content = *input.Content

		if len(input.Variables) == 0 {
			tpl.Variables = templating.ExtractVariables(tpl.Content)
		}
	}

	if len(input.Variables) > 0 {
		if dup := model.DuplicateVariableName(input.Variables); dup != "" {
			return nil, pkg.ValidateBusinessError(constant.ErrDuplicateVariableName, constant.MongoCollectionTemplate, dup)
		}

		tpl.Variables = input.Variables
	}

	if input.IsActive != nil {
		tpl.IsActive = *input.IsActive
	}

	if input.Metadata != nil {
		tpl.Metadata = input.Metadata
	}

	tpl.Version++
	tpl.UpdatedAt = uc.now()

	warnings, err := templating.ValidateAgainstRegistry(tpl.DocumentType, tpl.Content)
	if err != nil {
		return nil, err
	}

	if err := uc.TemplateRepo.Update(ctx, tpl); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to update template", err)

		logger.Errorf("Error updating template %s: %v", id, err)

		return nil, err
	}

	logger.Infof("Template %s updated to version %d", id, tpl.Version)

	return &model.TemplateOutput{DocumentTemplate: tpl, Warnings: warningsOrNil(warnings)}, nil
}
