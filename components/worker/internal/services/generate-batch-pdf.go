// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/pdf"
	"github.com/LerianStudio/condo-docs/pkg/storage"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.opentelemetry.io/otel/attribute"
)

// HTMLLayout wraps the content of a document in a printable page.
type HTMLLayout interface {
	Wrap(doc *model.GeneratedDocument) (string, error)
}

// DocumentPDFProcessor renders a saved document to PDF and uploads it to object storage.
type DocumentPDFProcessor struct {
	Layout   HTMLLayout
	Renderer pdf.Renderer
	Storage  storage.ObjectStorage

	// Breakers is optional and guards the renderer.
	Breakers *pkg.CircuitBreakerManager
}

var _ batch.PostProcessor = (*DocumentPDFProcessor)(nil)

var errEmptyPDF = errors.New("renderer returned an empty pdf")

// Process returns the object key of the uploaded PDF.
func (p *DocumentPDFProcessor) Process(ctx context.Context, doc *model.GeneratedDocument) (string, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.generate_batch.render_pdf")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.document_id", doc.ID.String()),
	)

	html, err := p.Layout.Wrap(doc)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Error wrapping document in print layout", err)

		return "", err
	}

	out, err := p.render(ctx, html)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Error rendering pdf", err)

		logger.Errorf("Error rendering pdf of document %s: %v", doc.ID, err)

		return "", err
	}

	key := storage.DocumentKey(doc.Metadata.BatchID.String(), doc.ID.String())

	if _, err := p.Storage.Upload(ctx, key, bytes.NewReader(out), constant.PDFContentType); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Error uploading pdf", err)

		logger.Errorf("Error uploading pdf of document %s: %v", doc.ID, err)

		return "", err
	}

	return key, nil
}

func (p *DocumentPDFProcessor) render(ctx context.Context, html string) ([]byte, error) {
	if p.Breakers == nil {
		return checkPDF(p.Renderer.Render(ctx, html))
	}

	result, err := p.Breakers.Execute(constant.BreakerPDFRenderer, func() (any, error) {
		return checkPDF(p.Renderer.Render(ctx, html))
	})
	if err != nil {
		return nil, err
	}

	out, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected renderer result %T", result)
	}

	return out, nil
}

func checkPDF(out []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, errEmptyPDF
	}

	return out, nil
}
