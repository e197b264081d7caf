// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package template

import (
	"time"

	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/google/uuid"
)

// VariableMongoDBModel represents the MongoDB model for a template variable
type VariableMongoDBModel struct {
	Name        string `bson:"name"`
	Label       string `bson:"label,omitempty"`
	Type        string `bson:"type,omitempty"`
	Required    bool   `bson:"required"`
	Description string `bson:"description,omitempty"`
}

// TemplateMongoDBModel represents the MongoDB model for a document template
type TemplateMongoDBModel struct {
	ID           uuid.UUID              `bson:"_id"`
	BuildingID   uuid.UUID              `bson:"building_id"`
	Name         string                 `bson:"name"`
	DocumentType string                 `bson:"document_type"`
	Content      string                 `bson:"content"`
	Variables    []VariableMongoDBModel `bson:"variables"`
	IsActive     bool                   `bson:"is_active"`
	Version      int                    `bson:"version"`
	Metadata     map[string]any         `bson:"metadata,omitempty"`
	CreatedAt    time.Time              `bson:"created_at"`
	UpdatedAt    time.Time              `bson:"updated_at"`
	DeletedAt    *time.Time             `bson:"deleted_at"`
}

// ToEntity converts TemplateMongoDBModel to model.DocumentTemplate
func (tm *TemplateMongoDBModel) ToEntity() *model.DocumentTemplate {
	variables := make([]model.VariableDefinition, 0, len(tm.Variables))
	for _, v := range tm.Variables {
		variables = append(variables, model.VariableDefinition{
			Name:        v.Name,
			Label:       v.Label,
			Type:        v.Type,
			Required:    v.Required,
			Description: v.Description,
		})
	}

	return &model.DocumentTemplate{
		ID:           tm.ID,
		BuildingID:   tm.BuildingID,
		Name:         tm.Name,
		DocumentType: tm.DocumentType,
		Content:      tm.Content,
		Variables:    variables,
		IsActive:     tm.IsActive,
		Version:      tm.Version,
		Metadata:     tm.Metadata,
		CreatedAt:    tm.CreatedAt,
		UpdatedAt:    tm.UpdatedAt,
	}
}

// FromEntity converts model.DocumentTemplate to TemplateMongoDBModel
func (tm *TemplateMongoDBModel) FromEntity(t *model.DocumentTemplate) {
	tm.ID = t.ID
	tm.BuildingID = t.BuildingID
	tm.Name = t.Name
	tm.DocumentType = t.DocumentType
	tm.Content = t.Content
	tm.Variables = variablesFromEntity(t.Variables)
	tm.IsActive = t.IsActive
	tm.Version = t.Version
	tm.Metadata = t.Metadata
	tm.CreatedAt = t.CreatedAt
	tm.UpdatedAt = t.UpdatedAt
}

func variablesFromEntity(variables []model.VariableDefinition) []VariableMongoDBModel {
	out := make([]VariableMongoDBModel, 0, len(variables))
	for _, v := range variables {
		out = append(out, VariableMongoDBModel{
			Name:        v.Name,
			Label:       v.Label,
			Type:        v.Type,
			Required:    v.Required,
			Description: v.Description,
		})
	}

	return out
}
