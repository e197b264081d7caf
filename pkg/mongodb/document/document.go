// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package document

import (
	"time"

	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/google/uuid"
)

// MetadataMongoDBModel represents the MongoDB model for the metadata of a generated document
type MetadataMongoDBModel struct {
	MemberID         uuid.UUID         `bson:"member_id"`
	MemberName       string            `bson:"member_name"`
	MemberEmail      string            `bson:"member_email,omitempty"`
	BatchID          uuid.UUID         `bson:"batch_id"`
	BatchTitle       string            `bson:"batch_title,omitempty"`
	SendMethod       string            `bson:"send_method"`
	GeneratedAt      time.Time         `bson:"generated_at"`
	Variables        map[string]string `bson:"variables"`
	TemplateVersion  int               `bson:"template_version"`
	TemplateSnapshot string            `bson:"template_snapshot,omitempty"`
	FailureReason    string            `bson:"failure_reason,omitempty"`
}

// DocumentMongoDBModel represents the MongoDB model for a generated document
type DocumentMongoDBModel struct {
	ID         uuid.UUID            `bson:"_id"`
	TemplateID uuid.UUID            `bson:"template_id"`
	BuildingID uuid.UUID            `bson:"building_id"`
	Type       string               `bson:"type"`
	Title      string               `bson:"title"`
	Content    string               `bson:"content"`
	Status     string               `bson:"status"`
	Metadata   MetadataMongoDBModel `bson:"metadata"`
	PdfURL     string               `bson:"pdf_url,omitempty"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
	DeletedAt  *time.Time           `bson:"deleted_at"`
}

// ToEntity converts DocumentMongoDBModel to model.GeneratedDocument
func (dm *DocumentMongoDBModel) ToEntity() *model.GeneratedDocument {
	return &model.GeneratedDocument{
		ID:         dm.ID,
		TemplateID: dm.TemplateID,
		BuildingID: dm.BuildingID,
		Type:       dm.Type,
		Title:      dm.Title,
		Content:    dm.Content,
		Status:     dm.Status,
		Metadata: model.DocumentMetadata{
			MemberID:         dm.Metadata.MemberID,
			MemberName:       dm.Metadata.MemberName,
			MemberEmail:      dm.Metadata.MemberEmail,
			BatchID:          dm.Metadata.BatchID,
			BatchTitle:       dm.Metadata.BatchTitle,
			SendMethod:       dm.Metadata.SendMethod,
			GeneratedAt:      dm.Metadata.GeneratedAt,
			Variables:        dm.Metadata.Variables,
			TemplateVersion:  dm.Metadata.TemplateVersion,
			TemplateSnapshot: dm.Metadata.TemplateSnapshot,
			FailureReason:    dm.Metadata.FailureReason,
		},
		PdfURL:    dm.PdfURL,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
}

// FromEntity converts model.GeneratedDocument to DocumentMongoDBModel
func (dm *DocumentMongoDBModel) FromEntity(d *model.GeneratedDocument) {
	dm.ID = d.ID
	dm.TemplateID = d.TemplateID
	dm.BuildingID = d.BuildingID
	dm.Type = d.Type
	dm.Title = d.Title
	dm.Content = d.Content
	dm.Status = d.Status
	dm.Metadata = MetadataMongoDBModel{
		MemberID:         d.Metadata.MemberID,
		MemberName:       d.Metadata.MemberName,
		MemberEmail:      d.Metadata.MemberEmail,
		BatchID:          d.Metadata.BatchID,
		BatchTitle:       d.Metadata.BatchTitle,
		SendMethod:       d.Metadata.SendMethod,
		GeneratedAt:      d.Metadata.GeneratedAt,
		Variables:        d.Metadata.Variables,
		TemplateVersion:  d.Metadata.TemplateVersion,
		TemplateSnapshot: d.Metadata.TemplateSnapshot,
		FailureReason:    d.Metadata.FailureReason,
	}
	dm.PdfURL = d.PdfURL
	dm.CreatedAt = d.CreatedAt
	dm.UpdatedAt = d.UpdatedAt
}
