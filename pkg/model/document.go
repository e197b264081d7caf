// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"fmt"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/google/uuid"
)

// DocumentMetadata records who a document was generated for and from what.
//
// swagger:model DocumentMetadata
// @Description DocumentMetadata carries recipient identity, batch and template snapshot data.
type DocumentMetadata struct {
	MemberID         uuid.UUID         `json:"memberId" example:"00000000-0000-0000-0000-000000000000"`
	MemberName       string            `json:"memberName" example:"João Silva"`
	MemberEmail      string            `json:"memberEmail,omitempty" example:"joao@example.com"`
	BatchID          uuid.UUID         `json:"batchId,omitempty" example:"00000000-0000-0000-0000-000000000000"`
	BatchTitle       string            `json:"batchTitle,omitempty" example:"Arrears letters March"`
	SendMethod       string            `json:"sendMethod" example:"download"`
	GeneratedAt      time.Time         `json:"generatedAt" example:"2021-01-01T00:00:00Z"`
	Variables        map[string]string `json:"variables"`
	TemplateVersion  int               `json:"templateVersion" example:"3"`
	TemplateSnapshot string            `json:"templateSnapshot,omitempty"`
	FailureReason    string            `json:"failureReason,omitempty"`
} // @name DocumentMetadata

// GeneratedDocument is one rendered document produced for one subject.
//
// swagger:model GeneratedDocument
// @Description GeneratedDocument is a rendered document for one member.
type GeneratedDocument struct {
	ID         uuid.UUID        `json:"id" example:"00000000-0000-0000-0000-000000000000"`
	TemplateID uuid.UUID        `json:"templateId" example:"00000000-0000-0000-0000-000000000000"`
	BuildingID uuid.UUID        `json:"buildingId" example:"00000000-0000-0000-0000-000000000000"`
	Type       string           `json:"type" example:"arrears_letter"`
	Title      string           `json:"title" example:"Arrears letter - João Silva"`
	Content    string           `json:"content" example:"<p>Dear João Silva</p>"`
	Status     string           `json:"status" example:"generated"`
	Metadata   DocumentMetadata `json:"metadata"`
	PdfURL     string           `json:"pdfUrl,omitempty" example:"documents/0000/0000.pdf"`
	CreatedAt  time.Time        `json:"createdAt" example:"2021-01-01T00:00:00Z"`
	UpdatedAt  time.Time        `json:"updatedAt" example:"2021-01-01T00:00:00Z"`
} // @name GeneratedDocument

// NewGeneratedDocument builds an unsaved document. Id and timestamps are assigned by the store.
func NewGeneratedDocument(template *DocumentTemplate, buildingID uuid.UUID, title, content, status string, metadata DocumentMetadata) (*GeneratedDocument, error) {
	if template == nil || template.ID == uuid.Nil {
		return nil, fmt.Errorf("document template must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if buildingID == uuid.Nil {
		return nil, fmt.Errorf("document buildingId must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if status != constant.DocumentStatusGenerated && status != constant.DocumentStatusProcessing {
		return nil, fmt.Errorf("document cannot be created with status %q: %w", status, constant.ErrBadRequest)
	}

	return &GeneratedDocument{
		TemplateID: template.ID,
		BuildingID: buildingID,
		Type:       template.DocumentType,
		Title:      title,
		Content:    content,
		Status:     status,
		Metadata:   metadata,
	}, nil
}

// CanTransitionTo reports whether the document may move to the given status.
// Only processing documents change status, and only to generated or failed.
func (d *GeneratedDocument) CanTransitionTo(status string) bool {
	return d.Status == constant.DocumentStatusProcessing &&
		(status == constant.DocumentStatusGenerated || status == constant.DocumentStatusFailed)
}

// StatusUpdate is the mutable part of a saved document: its status, its PDF location
// and, for failed documents, the reason.
type StatusUpdate struct {
	Status        string
	PdfURL        string
	FailureReason string
}

// PreviewInput asks for one document to be resolved and rendered without persisting it.
//
// swagger:model PreviewInput
// @Description PreviewInput selects a template and a member to preview.
type PreviewInput struct {
	TemplateID string            `json:"templateId" validate:"required,uuid" example:"00000000-0000-0000-0000-000000000000"`
	MemberID   string            `json:"memberId" validate:"required,uuid" example:"00000000-0000-0000-0000-000000000000"`
	Overrides  map[string]string `json:"overrides,omitempty"`
} // @name PreviewInput

// PreviewOutput is the rendered preview of one document.
//
// swagger:model PreviewOutput
// @Description PreviewOutput carries the rendered content and the values used.
type PreviewOutput struct {
	Title     string            `json:"title" example:"Arrears letter - João Silva"`
	Content   string            `json:"content" example:"<p>Dear João Silva</p>"`
	Variables map[string]string `json:"variables"`
} // @name PreviewOutput
