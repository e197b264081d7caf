// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"errors"

	"github.com/LerianStudio/condo-docs/components/manager/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
)

var errNilService = errors.New("service must not be nil")

// DocumentTypeHandler serves the variable registry.
type DocumentTypeHandler struct {
	Service *services.UseCase
}

// NewDocumentTypeHandler creates a DocumentTypeHandler, validating the service dependency.
func NewDocumentTypeHandler(service *services.UseCase) (*DocumentTypeHandler, error) {
	if service == nil {
		return nil, errNilService
	}

	return &DocumentTypeHandler{Service: service}, nil
}

// GetDocumentTypes is a method that lists the registered document types.
//
//	@Summary		List document types
//	@Description	List every document type with the variables a template of that type may reference.
//	@Tags			Document Types
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Success		200				{array}		model.DocumentTypeDefinition
//	@Router			/v1/document-types [get]
func (dh *DocumentTypeHandler) GetDocumentTypes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_document_types")
	defer span.End()

	span.SetAttributes(attribute.String("app.request.request_id", reqId))

	types, err := dh.Service.GetDocumentTypes(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to list document types", err)

		return http.WithError(c, err)
	}

	return http.OK(c, types)
}

// GetDocumentTypeVariables is a method that returns the variables of one document type.
//
//	@Summary		Get document type variables
//	@Tags			Document Types
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			type			path		string	true	"Document type"	Enums(arrears_letter,quota_certificate,assembly_notice,receipt,minutes_pdf,financial_report)
//	@Success		200				{object}	model.DocumentTypeDefinition
//	@Failure		400				{object}	pkg.ResponseError
//	@Router			/v1/document-types/{type}/variables [get]
func (dh *DocumentTypeHandler) GetDocumentTypeVariables(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_document_type_variables")
	defer span.End()

	documentType := c.Params("type")

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_type", documentType),
	)

	def, err := dh.Service.GetDocumentTypeVariables(ctx, documentType)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get document type variables", err)

		logger.Warnf("Document type %q lookup failed: %v", documentType, err)

		return http.WithError(c, err)
	}

	return http.OK(c, def)
}
