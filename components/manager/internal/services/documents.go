// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"io"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GetDocumentByID returns a generated document.
func (uc *UseCase) GetDocumentByID(ctx context.Context, id uuid.UUID) (*model.GeneratedDocument, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_document_by_id")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	doc, err := uc.DocumentRepo.Get(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get document", err)

		return nil, err
	}

	return doc, nil
}

// DeleteDocumentByID soft deletes a generated document. Its PDF, when there is one, is kept.
func (uc *UseCase) DeleteDocumentByID(ctx context.Context, id uuid.UUID) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.delete_document_by_id")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	if err := uc.DocumentRepo.Delete(ctx, id); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to delete document", err)

		logger.Errorf("Error deleting document %s: %v", id, err)

		return err
	}

	return nil
}

// GetDocumentsByBatch lists the documents a batch produced.
func (uc *UseCase) GetDocumentsByBatch(ctx context.Context, batchID uuid.UUID) ([]*model.GeneratedDocument, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_documents_by_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", batchID.String()),
	)

	docs, err := uc.DocumentRepo.FindByBatch(ctx, batchID)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to list batch documents", err)

		return nil, err
	}

	if docs == nil {
		docs = []*model.GeneratedDocument{}
	}

	return docs, nil
}

// DownloadDocument opens the PDF rendition of a document. The caller closes the reader.
func (uc *UseCase) DownloadDocument(ctx context.Context, id uuid.UUID) (*model.GeneratedDocument, io.ReadCloser, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.download_document")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", id.String()),
	)

	doc, err := uc.DocumentRepo.Get(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get document", err)

		return nil, nil, err
	}

	if doc.PdfURL == "" || doc.Status != constant.DocumentStatusGenerated {
		return nil, nil, pkg.ValidateBusinessError(constant.ErrDocumentWithoutPDF, constant.MongoCollectionDocument)
	}

	body, err := uc.Storage.Download(ctx, doc.PdfURL)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to download document PDF", err)

		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionDocument)
		}

		logger.Errorf("Error downloading PDF %s of document %s: %v", doc.PdfURL, id, err)

		return nil, nil, err
	}

	return doc, body, nil
}
