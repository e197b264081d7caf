// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"github.com/LerianStudio/condo-docs/components/manager/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// TemplateHandler serves the document template endpoints.
type TemplateHandler struct {
	Service *services.UseCase
}

// NewTemplateHandler creates a TemplateHandler, validating the service dependency.
func NewTemplateHandler(service *services.UseCase) (*TemplateHandler, error) {
	if service == nil {
		return nil, errNilService
	}

	return &TemplateHandler{Service: service}, nil
}

// CreateTemplate is a method that creates a document template.
//
//	@Summary		Create a document template
//	@Description	Create a document template. Variables are extracted from the content when none are given; registry mismatches are returned as warnings.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string						false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			template		body		model.CreateTemplateInput	true	"Template Input"
//	@Success		201				{object}	model.TemplateOutput
//	@Failure		400				{object}	pkg.ResponseError
//	@Failure		500				{object}	pkg.ResponseError
//	@Router			/v1/templates [post]
func (th *TemplateHandler) CreateTemplate(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.create_template")
	defer span.End()

	payload := p.(*model.CreateTemplateInput)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_type", payload.DocumentType),
	)

	logger.Infof("Request to create template %q of type %s", payload.Name, payload.DocumentType)

	out, err := th.Service.CreateTemplate(ctx, payload)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to create template", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully created template %s", out.ID)

	return http.Created(c, out)
}

// GetTemplateByID is a method that retrieves a document template by id.
//
//	@Summary		Get a document template
//	@Tags			Templates
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path		string	true	"Template ID"
//	@Success		200				{object}	model.DocumentTemplate
//	@Failure		404				{object}	pkg.ResponseError
//	@Router			/v1/templates/{id} [get]
func (th *TemplateHandler) GetTemplateByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_template_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	tpl, err := th.Service.GetTemplateByID(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to retrieve template", err)

		logger.Errorf("Failed to retrieve template %s: %v", id, err)

		return http.WithError(c, err)
	}

	return http.OK(c, tpl)
}

// GetAllTemplates is a method that lists document templates.
//
//	@Summary		List document templates
//	@Description	List templates filtered by building, document type and active flag, paginated.
//	@Tags			Templates
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			buildingId		query		string	false	"Building ID"
//	@Param			documentType	query		string	false	"Document type"
//	@Param			isActive		query		bool	false	"Active flag"
//	@Param			limit			query		int		false	"Limit"	default(10)
//	@Param			page			query		int		false	"Page"	default(1)
//	@Param			sortOrder		query		string	false	"Sort Order"	Enums(asc,desc)
//	@Success		200				{object}	model.Pagination{items=[]model.DocumentTemplate}
//	@Failure		400				{object}	pkg.ResponseError
//	@Router			/v1/templates [get]
func (th *TemplateHandler) GetAllTemplates(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_all_templates")
	defer span.End()

	span.SetAttributes(attribute.String("app.request.request_id", reqId))

	headerParams, err := http.ValidateParameters(c.Queries())
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to validate query parameters", err)

		logger.Errorf("Failed to validate query parameters: %v", err)

		return http.WithError(c, err)
	}

	templates, err := th.Service.GetAllTemplates(ctx, *headerParams)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to list templates", err)

		return http.WithError(c, err)
	}

	return http.OK(c, templates)
}

// UpdateTemplateByID is a method that updates a document template.
//
//	@Summary		Update a document template
//	@Description	Update name, content, variables, active flag or metadata. Every update bumps the version.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string						false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path		string						true	"Template ID"
//	@Param			template		body		model.UpdateTemplateInput	true	"Template Input"
//	@Success		200				{object}	model.TemplateOutput
//	@Failure		400				{object}	pkg.ResponseError
//	@Failure		404				{object}	pkg.ResponseError
//	@Router			/v1/templates/{id} [patch]
func (th *TemplateHandler) UpdateTemplateByID(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.update_template_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)
	payload := p.(*model.UpdateTemplateInput)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	logger.Infof("Initiating update of template %s", id)

	out, err := th.Service.UpdateTemplateByID(ctx, id, payload)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to update template", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully updated template %s to version %d", id, out.Version)

	return http.OK(c, out)
}

// DeleteTemplateByID is a method that soft deletes a document template.
//
//	@Summary		Delete a document template
//	@Tags			Templates
//	@Param			Authorization	header	string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path	string	true	"Template ID"
//	@Success		204
//	@Failure		404	{object}	pkg.ResponseError
//	@Router			/v1/templates/{id} [delete]
func (th *TemplateHandler) DeleteTemplateByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.delete_template_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", id.String()),
	)

	if err := th.Service.DeleteTemplateByID(ctx, id); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to delete template", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully deleted template %s", id)

	return http.NoContent(c)
}

// ExtractVariables is a method that lists the placeholders of a template body.
//
//	@Summary		Extract template variables
//	@Description	Return the distinct placeholders of content in order of first appearance. When documentType is set, registry warnings are included.
//	@Tags			Templates
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string						false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			content			body		model.ExtractVariablesInput	true	"Template content"
//	@Success		200				{object}	model.ExtractVariablesOutput
//	@Failure		400				{object}	pkg.ResponseError
//	@Router			/v1/templates/extract-variables [post]
func (th *TemplateHandler) ExtractVariables(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.extract_variables")
	defer span.End()

	span.SetAttributes(attribute.String("app.request.request_id", reqId))

	out, err := th.Service.ExtractVariables(ctx, p.(*model.ExtractVariablesInput))
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to extract variables", err)

		return http.WithError(c, err)
	}

	return http.OK(c, out)
}
