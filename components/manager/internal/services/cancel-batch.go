// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CancelBatch flags a queued or running batch for cancellation. The worker stops
// between two subjects and records the rest as cancelled.
func (uc *UseCase) CancelBatch(ctx context.Context, id uuid.UUID) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.cancel_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", id.String()),
	)

	status, err := uc.BatchRepo.GetStatus(ctx, id)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get batch status", err)

		return err
	}

	if status.Status != constant.BatchStatusQueued && status.Status != constant.BatchStatusRunning {
		return pkg.ValidateBusinessError(constant.ErrBatchAlreadyFinished, "Batch")
	}

	if err := uc.BatchRepo.RequestCancel(ctx, id); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to request cancellation", err)

		logger.Errorf("Error requesting cancellation of batch %s: %v", id, err)

		return err
	}

	return nil
}
