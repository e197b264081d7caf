// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.opentelemetry.io/otel/attribute"
)

// GetAllTemplates lists a page of templates matching filters.
func (uc *UseCase) GetAllTemplates(ctx context.Context, filters http.QueryHeader) (*model.Pagination, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_all_templates")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.Int("app.request.limit", filters.Limit),
		attribute.Int("app.request.page", filters.Page),
	)

	templates, total, err := uc.TemplateRepo.FindList(ctx, filters)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to list templates", err)

		logger.Errorf("Error listing templates: %v", err)

		return nil, err
	}

	if templates == nil {
		templates = []*model.DocumentTemplate{}
	}

	page := &model.Pagination{Page: filters.Page, Limit: filters.Limit}
	page.SetItems(templates)
	page.SetTotal(int(total))

	return page, nil
}
