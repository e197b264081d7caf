// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/model"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GetBatchByID returns the progress record of a batch.
func (uc *UseCase) GetBatchByID(ctx context.Context, id uuid.UUID) (*model.BatchStatus, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_batch_by_id")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", id.String()),
	)

	status, err := uc.BatchRepo.GetStatus(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get batch status", err)

		return nil, err
	}

	return status, nil
}
