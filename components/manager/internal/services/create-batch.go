// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CreateBatch validates a batch request, registers it as queued and publishes it to the
// worker queue. Members of another building than the template's are rejected up front;
// members that cannot be found are left to the worker, which records them as failures.
func (uc *UseCase) CreateBatch(ctx context.Context, input *model.CreateBatchInput) (*model.CreateBatchOutput, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.create_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.template_id", input.TemplateID),
		attribute.Int("app.request.members", len(input.MemberIDs)),
		attribute.String("app.request.send_method", input.SendMethod),
	)

	if err := validateBatchInput(input); err != nil {
		return nil, err
	}

	templateID, err := uuid.Parse(input.TemplateID)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, "Batch", "templateId must be a valid UUID")
	}

	memberIDs := make([]uuid.UUID, 0, len(input.MemberIDs))
	seen := make(map[uuid.UUID]struct{}, len(input.MemberIDs))

	for _, raw := range input.MemberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrBadRequest, "Batch", "memberIds must be valid UUIDs")
		}

		// Spelling variants of one UUID pass the struct tag but name the same member.
		if _, dup := seen[id]; dup {
			return nil, pkg.ValidateBusinessError(constant.ErrDuplicateBatchMember, "Batch", id.String())
		}

		seen[id] = struct{}{}
		memberIDs = append(memberIDs, id)
	}

	tpl, err := uc.TemplateRepo.FindByID(ctx, templateID)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get template on repo by id", err)

		return nil, err
	}

	if !tpl.IsActive {
		return nil, pkg.ValidateBusinessError(constant.ErrTemplateInactive, constant.MongoCollectionTemplate)
	}

	members, err := uc.Directory.FindMembers(ctx, memberIDs)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to find members", err)

		logger.Errorf("Error finding batch members: %v", err)

		return nil, err
	}

	for _, m := range members {
		if m.BuildingID != tpl.BuildingID {
			return nil, pkg.ValidateBusinessError(constant.ErrTemplateBuildingMismatch, "Batch", m.ID.String())
		}
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to generate batch id", err)

		return nil, err
	}

	subjects := make([]model.Subject, 0, len(memberIDs))
	for _, id := range memberIDs {
		subjects = append(subjects, model.Subject{MemberID: id, BuildingID: tpl.BuildingID, Overrides: input.Overrides})
	}

	now := uc.now()
	status := &model.BatchStatus{
		BatchID:    batchID,
		TemplateID: tpl.ID,
		Title:      input.Title,
		SendMethod: input.SendMethod,
		Status:     constant.BatchStatusQueued,
		Total:      len(subjects),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.BatchRepo.SaveStatus(ctx, status); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to register batch", err)

		logger.Errorf("Error registering batch %s: %v", batchID, err)

		return nil, err
	}

	msg := model.BatchMessage{
		BatchID:    batchID,
		TemplateID: tpl.ID,
		Subjects:   subjects,
		Title:      input.Title,
		SendMethod: input.SendMethod,
	}

	if err := uc.RabbitMQRepo.PublishBatch(ctx, uc.Exchange, uc.RoutingKey, msg); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to publish batch", err)

		logger.Errorf("Error publishing batch %s: %v", batchID, err)

		status.Status = constant.BatchStatusFailed
		status.UpdatedAt = uc.now()

		if saveErr := uc.BatchRepo.SaveStatus(ctx, status); saveErr != nil {
			logger.Errorf("Error marking batch %s as failed: %v", batchID, saveErr)
		}

		return nil, err
	}

	logger.Infof("Batch %s queued with %d subjects", batchID, len(subjects))

	return &model.CreateBatchOutput{BatchID: batchID, Status: status.Status, Total: status.Total}, nil
}

func validateBatchInput(input *model.CreateBatchInput) error {
	switch input.SendMethod {
	case constant.SendMethodDownload, constant.SendMethodEmail, constant.SendMethodPrint:
	default:
		return pkg.ValidateBusinessError(constant.ErrInvalidSendMethod, "Batch", input.SendMethod)
	}

	if len(input.MemberIDs) == 0 {
		return pkg.ValidateBusinessError(constant.ErrEmptyBatch, "Batch")
	}

	if len(input.MemberIDs) > constant.MaxBatchSubjects {
		return pkg.ValidateBusinessError(constant.ErrBatchSizeExceeded, "Batch", constant.MaxBatchSubjects)
	}

	return nil
}
