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

// PreviewDocument resolves and renders the template for one member without persisting anything.
// Inactive templates can be previewed.
func (uc *UseCase) PreviewDocument(ctx context.Context, input *model.PreviewInput) (*model.PreviewOutput, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.preview_document")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", input.TemplateID),
		attribute.String("app.request.member_id", input.MemberID),
	)

	templateID, err := uuid.Parse(input.TemplateID)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, constant.MongoCollectionTemplate, "templateId must be a valid UUID")
	}

	memberID, err := uuid.Parse(input.MemberID)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, constant.MongoCollectionTemplate, "memberId must be a valid UUID")
	}

	tpl, err := uc.TemplateRepo.FindByID(ctx, templateID)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get template on repo by id", err)

		return nil, err
	}

	vars, err := uc.Resolver.Resolve(ctx, tpl.DocumentType, model.Subject{
		MemberID:   memberID,
		BuildingID: tpl.BuildingID,
		Overrides:  input.Overrides,
	})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to resolve variables", err)

		logger.Errorf("Error resolving preview of template %s for member %s: %v", templateID, memberID, err)

		return nil, err
	}

	values := vars.Values()

	title := tpl.Name
	if name := values["memberName"]; name != "" {
		title = title + " - " + name
	}

	return &model.PreviewOutput{
		Title:     title,
		Content:   templating.Render(tpl.Content, values),
		Variables: values,
	}, nil
}
