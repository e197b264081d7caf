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

// BatchHandler serves batch submission and tracking.
type BatchHandler struct {
	Service *services.UseCase
}

// NewBatchHandler creates a BatchHandler, validating the service dependency.
func NewBatchHandler(service *services.UseCase) (*BatchHandler, error) {
	if service == nil {
		return nil, errNilService
	}

	return &BatchHandler{Service: service}, nil
}

// CreateBatch is a method that queues a bulk generation.
//
//	@Summary		Generate documents in bulk
//	@Description	Validate the request, register the batch as queued and hand it to the worker. Poll the batch for progress.
//	@Tags			Batches
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			batch			body		model.CreateBatchInput	true	"Batch Input"
//	@Success		202				{object}	model.CreateBatchOutput
//	@Failure		400				{object}	pkg.ResponseError
//	@Failure		404				{object}	pkg.ResponseError
//	@Failure		422				{object}	pkg.ResponseError
//	@Router			/v1/batches [post]
func (bh *BatchHandler) CreateBatch(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.create_batch")
	defer span.End()

	payload := p.(*model.CreateBatchInput)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", payload.TemplateID),
		attribute.Int("app.request.subjects", len(payload.MemberIDs)),
	)

	logger.Infof("Request to generate %d documents from template %s", len(payload.MemberIDs), payload.TemplateID)

	out, err := bh.Service.CreateBatch(ctx, payload)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to create batch", err)

		return http.WithError(c, err)
	}

	logger.Infof("Batch %s queued", out.BatchID)

	return http.Accepted(c, out)
}

// GetBatchByID is a method that returns the progress of a batch.
//
//	@Summary		Get batch status
//	@Tags			Batches
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path		string	true	"Batch ID"
//	@Success		200				{object}	model.BatchStatus
//	@Failure		404				{object}	pkg.ResponseError
//	@Router			/v1/batches/{id} [get]
func (bh *BatchHandler) GetBatchByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_batch_by_id")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", id.String()),
	)

	status, err := bh.Service.GetBatchByID(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get batch", err)

		return http.WithError(c, err)
	}

	return http.OK(c, status)
}

// CancelBatch is a method that requests cancellation of a running batch.
//
//	@Summary		Cancel a batch
//	@Description	Subjects not yet processed are recorded as cancelled failures. Documents already generated are kept.
//	@Tags			Batches
//	@Param			Authorization	header	string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path	string	true	"Batch ID"
//	@Success		202
//	@Failure		404	{object}	pkg.ResponseError
//	@Failure		422	{object}	pkg.ResponseError
//	@Router			/v1/batches/{id} [delete]
func (bh *BatchHandler) CancelBatch(c *fiber.Ctx) error {
	ctx := c.UserContext()
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.cancel_batch")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", id.String()),
	)

	if err := bh.Service.CancelBatch(ctx, id); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to cancel batch", err)

		return http.WithError(c, err)
	}

	logger.Infof("Cancellation requested for batch %s", id)

	return c.SendStatus(fiber.StatusAccepted)
}

// GetBatchDocuments is a method that lists the documents generated by a batch.
//
//	@Summary		List batch documents
//	@Tags			Batches
//	@Produce		json
//	@Param			Authorization	header		string	false	"The authorization token in the 'Bearer	access_token' format."
//	@Param			id				path		string	true	"Batch ID"
//	@Success		200				{array}		model.GeneratedDocument
//	@Router			/v1/batches/{id}/documents [get]
func (bh *BatchHandler) GetBatchDocuments(c *fiber.Ctx) error {
	ctx := c.UserContext()
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_batch_documents")
	defer span.End()

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", id.String()),
	)

	docs, err := bh.Service.GetDocumentsByBatch(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to list batch documents", err)

		return http.WithError(c, err)
	}

	return http.OK(c, docs)
}
