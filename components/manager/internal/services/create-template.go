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

// CreateTemplate stores a new template. When the input declares no variables they are
// extracted from the content. Mismatches with the variable registry are returned as
// warnings and never block creation.
func (uc *UseCase) CreateTemplate(ctx context.Context, input *model.CreateTemplateInput) (*model.TemplateOutput, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.create_template")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_type", input.DocumentType),
	)

	buildingID, err := uuid.Parse(input.BuildingID)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, constant.MongoCollectionTemplate, "buildingId must be a valid UUID")
	}

	warnings, err := templating.ValidateAgainstRegistry(input.DocumentType, input.Content)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Unknown document type", err)

		return nil, err
	}

	variables := input.Variables
	if len(variables) == 0 {
		variables = templating.ExtractVariables(input.Content)
	}

	id, err := uuid.NewV7()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to generate template id", err)

		return nil, err
	}

	tpl, err := model.NewDocumentTemplate(id, buildingID, input.Name, input.DocumentType, input.Content, variables)
	if err != nil {
		return nil, templateInvariantError(err, variables)
	}

	tpl.Metadata = input.Metadata

	if !warnings.Empty() {
		logger.Warnf("Template %q does not match the %s registry: unknown=%v missing=%v",
			tpl.Name, tpl.DocumentType, warnings.UnknownVariables, warnings.MissingRequired)
	}

	created, err := uc.TemplateRepo.Create(ctx, tpl)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to create template", err)

		logger.Errorf("Error creating template: %v", err)

		return nil, err
	}

	logger.Infof("Template %s created", created.ID)

	return &model.TemplateOutput{DocumentTemplate: created, Warnings: warningsOrNil(warnings)}, nil
}

func warningsOrNil(w model.TemplateWarnings) *model.TemplateWarnings {
	if w.Empty() {
		return nil
	}

	return &w
}

// templateInvariantError maps a model invariant violation to its business error.
func templateInvariantError(err error, variables []model.VariableDefinition) error {
	if dup := model.DuplicateVariableName(variables); dup != "" {
		return pkg.ValidateBusinessError(constant.ErrDuplicateVariableName, constant.MongoCollectionTemplate, dup)
	}

	return pkg.ValidateBusinessError(constant.ErrBadRequest, constant.MongoCollectionTemplate, err.Error())
}
