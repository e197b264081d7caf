// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"github.com/LerianStudio/condo-docs/components/manager/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// DocumentHandler serves previews and generated documents.
type DocumentHandler struct {
	Service *services.UseCase
}

// NewDocumentHandler creates a DocumentHandler, validating the service dependency.
func NewDocumentHandler(service *services.UseCase) (*DocumentHandler, error) {
	if service == nil {
		return nil, errNilService
	}

	return &DocumentHandler{Service: service}, nil
}

// PreviewDocument is a method that renders one document without persisting it.
//
//	@Summary		Preview a document
//	@Description	Resolve the variables of one member and render the template. Nothing is stored.
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			preview			body		model.PreviewInput	true	"Preview Input"
//	@Success		200				{object}	model.PreviewOutput
//	@Failure		400				{object}	pkg.ResponseError
//	@Failure		404				{object}	pkg.ResponseError
//	@Router			/v1/documents/preview [post]
func (dh *DocumentHandler) PreviewDocument(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.preview_document")
	defer span.End()

	payload := p.(*model.PreviewInput)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", payload.TemplateID),
		attribute.String("app.request.member_id", payload.MemberID),
	)

	out, err := dh.Service.PreviewDocument(ctx, payload)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to preview document", err)

		logger.Errorf("Failed to preview template %s for member %s: %v", payload.TemplateID, payload.MemberID, err)

		return http.WithError(c, err)
	}

	return http.OK(c, out)
}

// GetDocumentByID is a method that retrieves a generated document.
//
//	@Summary		Get a generated document
//	@Tags			Documents
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path		string	true	"Document ID"
//	@Success		200				{object}	model.GeneratedDocument
//	@Failure		404				{object}	pkg.ResponseError
//	@Router			/v1/documents/{id} [get]
func (dh *DocumentHandler) GetDocumentByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_document_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	doc, err := dh.Service.GetDocumentByID(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get document", err)

		return http.WithError(c, err)
	}

	return http.OK(c, doc)
}

// DeleteDocumentByID is a method that soft deletes a generated document.
//
//	@Summary		Delete a generated document
//	@Tags			Documents
//	@Param			Authorization	header	string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path	string	true	"Document ID"
//	@Success		204
//	@Failure		404	{object}	pkg.ResponseError
//	@Router			/v1/documents/{id} [delete]
func (dh *DocumentHandler) DeleteDocumentByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.delete_document_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	if err := dh.Service.DeleteDocumentByID(ctx, id); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to delete document", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully deleted document %s", id)

	return http.NoContent(c)
}

// DownloadDocument is a method that streams the PDF of a generated document.
//
//	@Summary		Download a document PDF
//	@Tags			Documents
//	@Produce		application/pdf
//	@Param			Authorization	header	string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path	string	true	"Document ID"
//	@Success		200				{file}	file
//	@Failure		404				{object}	pkg.ResponseError
//	@Failure		422				{object}	pkg.ResponseError
//	@Router			/v1/documents/{id}/download [get]
func (dh *DocumentHandler) DownloadDocument(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.download_document")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	doc, body, err := dh.Service.DownloadDocument(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to download document", err)

		return http.WithError(c, err)
	}

	logger.Infof("Streaming PDF of document %s", id)

	c.Set(fiber.HeaderContentType, constant.PDFContentType)
	c.Attachment(doc.ID.String() + ".pdf")

	// fasthttp closes body once the stream has been written.
	return c.SendStream(body)
}
