// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GenerateBatch handles one batch message. A batch whose lock is already taken is
// skipped. The lock is released when the run fails so a redelivery can retry it.
func (uc *UseCase) GenerateBatch(ctx context.Context, body []byte) (err error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.generate_batch")
	defer span.End()

	var message model.BatchMessage
	if err := json.Unmarshal(body, &message); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Error unmarshalling batch message", err)

		logger.Errorf("Error unmarshalling batch message: %v", err)

		return pkg.ValidateBusinessError(constant.ErrBadRequest, "BatchMessage", err.Error())
	}

	if message.BatchID == uuid.Nil || message.TemplateID == uuid.Nil {
		return pkg.ValidateBusinessError(constant.ErrMissingRequiredFields, "BatchMessage", "batchId, templateId")
	}

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", message.BatchID.String()),
		attribute.String("app.request.template_id", message.TemplateID.String()),
		attribute.Int("app.request.subjects", len(message.Subjects)),
	)

	acquired, err := uc.BatchRepo.AcquireLock(ctx, message.BatchID, uc.Owner)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to acquire batch lock", err)

		return err
	}

	if !acquired {
		logger.Infof("Batch %s is already processed or in progress, skipping", message.BatchID)

		return nil
	}

	defer func() {
		if err == nil {
			return
		}

		if releaseErr := uc.BatchRepo.ReleaseLock(context.WithoutCancel(ctx), message.BatchID); releaseErr != nil {
			logger.Errorf("Failed to release lock of batch %s: %v", message.BatchID, releaseErr)
		}
	}()

	status := uc.loadStatus(ctx, logger, message)

	tpl, err := uc.TemplateRepo.FindByID(ctx, message.TemplateID)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get template on repo by id", err)

		logger.Errorf("Error getting template %s of batch %s: %v", message.TemplateID, message.BatchID, err)

		var notFound pkg.EntityNotFoundError
		if errors.As(err, &notFound) {
			uc.finishFailed(ctx, logger, status)
		}

		return err
	}

	status.Status = constant.BatchStatusRunning
	status.UpdatedAt = uc.now()
	uc.saveStatus(ctx, logger, status)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var cancelRequested atomic.Bool

	stopPolling := uc.pollCancellation(runCtx, logger, message.BatchID, func() {
		cancelRequested.Store(true)
		cancel()
	})

	report, err := uc.generatorFor(message.SendMethod).RunBatch(runCtx, tpl, message.Subjects, batch.Options{
		BatchID:    message.BatchID,
		Title:      message.Title,
		SendMethod: message.SendMethod,
		OnProgress: func(processed, total int) {
			status.Processed = processed
			status.Progress = progress(processed, total)
			status.UpdatedAt = uc.now()
			uc.saveStatus(ctx, logger, status)
		},
	})

	stopPolling()

	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to run batch", err)

		logger.Errorf("Batch %s could not start: %v", message.BatchID, err)

		uc.finishFailed(ctx, logger, status)

		return err
	}

	final := constant.BatchStatusCompleted

	switch {
	case cancelRequested.Load():
		final = constant.BatchStatusCancelled
	case ctx.Err() != nil:
		final = constant.BatchStatusFailed
	}

	uc.finish(ctx, logger, status, report, final)

	span.SetAttributes(attribute.String("app.batch.status", final))

	return nil
}

// loadStatus returns the registered status of the batch, or a fresh one when the
// manager's record expired or could not be read.
func (uc *UseCase) loadStatus(ctx context.Context, logger log.Logger, message model.BatchMessage) *model.BatchStatus {
	status, err := uc.BatchRepo.GetStatus(ctx, message.BatchID)
	if err == nil && status != nil {
		status.Total = len(message.Subjects)

		return status
	}

	logger.Warnf("Batch %s has no readable status, starting a new one: %v", message.BatchID, err)

	now := uc.now()

	return &model.BatchStatus{
		BatchID:    message.BatchID,
		TemplateID: message.TemplateID,
		Title:      message.Title,
		SendMethod: message.SendMethod,
		Status:     constant.BatchStatusQueued,
		Total:      len(message.Subjects),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// pollCancellation calls onCancel once the cancellation flag of the batch is set.
// The returned func stops polling and waits for the poller to exit.
func (uc *UseCase) pollCancellation(ctx context.Context, logger log.Logger, batchID uuid.UUID, onCancel func()) func() {
	ctx, stop := context.WithCancel(ctx)
	done := make(chan struct{})

	pkg.GoNamed(logger, "batch-cancel-poller", func() {
		defer close(done)

		ticker := time.NewTicker(uc.cancelPollInterval())
		defer ticker.Stop()

		for {
			if requested, err := uc.BatchRepo.IsCancelRequested(ctx, batchID); err != nil {
				if ctx.Err() == nil {
					logger.Warnf("Failed to read cancellation flag of batch %s: %v", batchID, err)
				}
			} else if requested {
				logger.Infof("Batch %s cancellation requested", batchID)
				onCancel()

				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	})

	return func() {
		stop()
		<-done
	}
}

// finish records the outcome of a run.
func (uc *UseCase) finish(ctx context.Context, logger log.Logger, status *model.BatchStatus, report *batch.Report, final string) {
	now := uc.now()

	status.Status = final
	status.Total = report.Total()
	status.Processed = report.Total()
	status.Succeeded = len(report.Succeeded)
	status.Failed = len(report.Failed)
	status.Progress = progress(status.Processed, status.Total)
	status.UpdatedAt = now
	status.CompletedAt = &now

	status.DocumentIDs = make([]uuid.UUID, 0, len(report.Succeeded))
	for _, doc := range report.Succeeded {
		status.DocumentIDs = append(status.DocumentIDs, doc.ID)
	}

	status.Failures = make([]model.BatchFailure, 0, len(report.Failed))
	for _, f := range report.Failed {
		status.Failures = append(status.Failures, f.ToModel())
	}

	uc.saveStatus(ctx, logger, status)

	logger.Infof("Batch %s %s: %d generated, %d failed", status.BatchID, final, status.Succeeded, status.Failed)
}

func (uc *UseCase) finishFailed(ctx context.Context, logger log.Logger, status *model.BatchStatus) {
	now := uc.now()

	status.Status = constant.BatchStatusFailed
	status.UpdatedAt = now
	status.CompletedAt = &now

	uc.saveStatus(ctx, logger, status)
}

// saveStatus stores status outside of ctx's cancellation, so progress survives a
// cancelled run. Failures are logged only.
func (uc *UseCase) saveStatus(ctx context.Context, logger log.Logger, status *model.BatchStatus) {
	if err := uc.BatchRepo.SaveStatus(context.WithoutCancel(ctx), status); err != nil {
		logger.Errorf("Failed to save status of batch %s: %v", status.BatchID, err)
	}
}

func progress(processed, total int) float64 {
	if total <= 0 {
		return 1
	}

	return float64(processed) / float64(total)
}
