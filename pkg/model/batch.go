// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"time"

	"github.com/google/uuid"
)

// CreateBatchInput is the request payload to generate one document per member.
//
// swagger:model CreateBatchInput
// @Description CreateBatchInput selects a template, the members and the delivery intent of a batch.
type CreateBatchInput struct {
	TemplateID string            `json:"templateId" validate:"required,uuid" example:"00000000-0000-0000-0000-000000000000"`
	MemberIDs  []string          `json:"memberIds" validate:"required,min=1,unique,dive,uuid"`
	Title      string            `json:"title" validate:"required,max=200" example:"Arrears letters March"`
	SendMethod string            `json:"sendMethod" validate:"required,oneof=download email print" example:"download"`
	Overrides  map[string]string `json:"overrides,omitempty"`
} // @name CreateBatchInput

// BatchMessage is the message published to RabbitMQ for the worker to run a batch.
// It is the in-flight form of a batch generation request and is never persisted as an entity.
//
// swagger:model BatchMessage
// @Description BatchMessage represents a batch generation request sent through RabbitMQ.
type BatchMessage struct {
	BatchID    uuid.UUID `json:"batchId" example:"00000000-0000-0000-0000-000000000000"`
	TemplateID uuid.UUID `json:"templateId" example:"00000000-0000-0000-0000-000000000000"`
	Subjects   []Subject `json:"subjects"`
	Title      string    `json:"title" example:"Arrears letters March"`
	SendMethod string    `json:"sendMethod" example:"download"`
} // @name BatchMessage

// BatchFailure records why one subject of a batch failed, with enough detail to retry it.
//
// swagger:model BatchFailure
// @Description BatchFailure identifies a failed member and the reason.
type BatchFailure struct {
	MemberID uuid.UUID `json:"memberId" example:"00000000-0000-0000-0000-000000000000"`
	Reason   string    `json:"reason" example:"DOC-0003 - subject not found"`
	Code     string    `json:"code,omitempty" example:"DOC-0003"`
} // @name BatchFailure

// BatchStatus is the progress record of a batch, kept in Redis while it runs and after it ends.
//
// swagger:model BatchStatus
// @Description BatchStatus reports progress and the final outcome of a batch.
type BatchStatus struct {
	BatchID     uuid.UUID      `json:"batchId" example:"00000000-0000-0000-0000-000000000000"`
	TemplateID  uuid.UUID      `json:"templateId" example:"00000000-0000-0000-0000-000000000000"`
	Title       string         `json:"title" example:"Arrears letters March"`
	SendMethod  string         `json:"sendMethod" example:"download"`
	Status      string         `json:"status" example:"running"`
	Total       int            `json:"total" example:"3"`
	Processed   int            `json:"processed" example:"2"`
	Succeeded   int            `json:"succeeded" example:"2"`
	Failed      int            `json:"failed" example:"0"`
	Progress    float64        `json:"progress" example:"0.66"`
	DocumentIDs []uuid.UUID    `json:"documentIds,omitempty"`
	Failures    []BatchFailure `json:"failures,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" example:"2021-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updatedAt" example:"2021-01-01T00:00:00Z"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" example:"2021-01-01T00:00:00Z"`
} // @name BatchStatus

// CreateBatchOutput is the accepted response of a batch request.
//
// swagger:model CreateBatchOutput
// @Description CreateBatchOutput returns the id to poll for progress.
type CreateBatchOutput struct {
	BatchID uuid.UUID `json:"batchId" example:"00000000-0000-0000-0000-000000000000"`
	Status  string    `json:"status" example:"queued"`
	Total   int       `json:"total" example:"3"`
} // @name CreateBatchOutput
