// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/google/uuid"
)

// VariableDefinition describes one placeholder a template may reference.
//
// swagger:model VariableDefinition
// @Description VariableDefinition describes a named template variable.
type VariableDefinition struct {
	Name        string `json:"name" validate:"required,max=100,placeholder" example:"memberName"`
	Label       string `json:"label" validate:"max=200" example:"Member name"`
	Type        string `json:"type" validate:"omitempty,oneof=text number date currency boolean" example:"text"`
	Required    bool   `json:"required" example:"true"`
	Description string `json:"description,omitempty" validate:"max=500" example:"Full name of the recipient"`
} // @name VariableDefinition

// DocumentTemplate is an operator-authored HTML template bound to one document type.
//
// swagger:model DocumentTemplate
// @Description DocumentTemplate is a reusable document template.
type DocumentTemplate struct {
	ID           uuid.UUID            `json:"id" example:"00000000-0000-0000-0000-000000000000"`
	BuildingID   uuid.UUID            `json:"buildingId" example:"00000000-0000-0000-0000-000000000000"`
	Name         string               `json:"name" example:"Arrears letter 2026"`
	DocumentType string               `json:"documentType" example:"arrears_letter"`
	Content      string               `json:"content" example:"<p>Dear {{memberName}}</p>"`
	Variables    []VariableDefinition `json:"variables"`
	IsActive     bool                 `json:"isActive" example:"true"`
	Version      int                  `json:"version" example:"1"`
	Metadata     map[string]any       `json:"metadata,omitempty"`
	CreatedAt    time.Time            `json:"createdAt" example:"2021-01-01T00:00:00Z"`
	UpdatedAt    time.Time            `json:"updatedAt" example:"2021-01-01T00:00:00Z"`
} // @name DocumentTemplate

// NewDocumentTemplate creates a new DocumentTemplate with invariant validation.
// Variable names must be unique within the template. The template starts active at version 1.
func NewDocumentTemplate(id, buildingID uuid.UUID, name, documentType, content string, variables []VariableDefinition) (*DocumentTemplate, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("template id must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if buildingID == uuid.Nil {
		return nil, fmt.Errorf("template buildingId must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("template name must not be empty: %w", constant.ErrMissingRequiredFields)
	}

	if documentType == "" {
		return nil, fmt.Errorf("template documentType must not be empty: %w", constant.ErrMissingRequiredFields)
	}

	if dup := DuplicateVariableName(variables); dup != "" {
		return nil, fmt.Errorf("variable %q declared twice: %w", dup, constant.ErrDuplicateVariableName)
	}

	now := time.Now()

	return &DocumentTemplate{
		ID:           id,
		BuildingID:   buildingID,
		Name:         name,
		DocumentType: documentType,
		Content:      content,
		Variables:    variables,
		IsActive:     true,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// DuplicateVariableName returns the first variable name declared more than once, or "".
func DuplicateVariableName(variables []VariableDefinition) string {
	seen := make(map[string]struct{}, len(variables))

	for _, v := range variables {
		if _, ok := seen[v.Name]; ok {
			return v.Name
		}

		seen[v.Name] = struct{}{}
	}

	return ""
}

// CreateTemplateInput is a struct designed to encapsulate request create payload data.
//
// swagger:model CreateTemplateInput
// @Description CreateTemplateInput is the input payload to create a document template.
type CreateTemplateInput struct {
	BuildingID   string               `json:"buildingId" validate:"required,uuid" example:"00000000-0000-0000-0000-000000000000"`
	Name         string               `json:"name" validate:"required,max=200" example:"Arrears letter 2026"`
	DocumentType string               `json:"documentType" validate:"required,documenttype" example:"arrears_letter"`
	Content      string               `json:"content" validate:"required,max=524288" example:"<p>Dear {{memberName}}, you owe {{arrearAmount}}</p>"`
	Variables    []VariableDefinition `json:"variables,omitempty" validate:"omitempty,dive"`
	Metadata     map[string]any       `json:"metadata,omitempty" validate:"omitempty,dive,keys,keymax=100,endkeys,nonested,valuemax=2000"`
} // @name CreateTemplateInput

// UpdateTemplateInput is a struct designed to encapsulate request update payload data.
// Nil fields are left untouched.
//
// swagger:model UpdateTemplateInput
// @Description UpdateTemplateInput is the input payload to update a document template.
type UpdateTemplateInput struct {
	Name      *string              `json:"name,omitempty" validate:"omitempty,max=200" example:"Arrears letter 2026 v2"`
	Content   *string              `json:"content,omitempty" validate:"omitempty,max=524288" example:"<p>Dear {{memberName}}</p>"`
	Variables []VariableDefinition `json:"variables,omitempty" validate:"omitempty,dive"`
	IsActive  *bool                `json:"isActive,omitempty" example:"false"`
	Metadata  map[string]any       `json:"metadata,omitempty" validate:"omitempty,dive,keys,keymax=100,endkeys,nonested,valuemax=2000"`
} // @name UpdateTemplateInput

// ExtractVariablesInput is the payload of the variable extraction endpoint.
//
// swagger:model ExtractVariablesInput
// @Description ExtractVariablesInput carries template content to scan for placeholders.
type ExtractVariablesInput struct {
	Content      string `json:"content" example:"<p>Dear {{memberName}}</p>"`
	DocumentType string `json:"documentType,omitempty" validate:"omitempty,documenttype" example:"arrears_letter"`
} // @name ExtractVariablesInput

// TemplateWarnings lists advisory mismatches between a template and the variable registry.
//
// swagger:model TemplateWarnings
// @Description TemplateWarnings lists placeholders unknown to the registry and required variables the content never references.
type TemplateWarnings struct {
	UnknownVariables []string `json:"unknownVariables"`
	MissingRequired  []string `json:"missingRequired"`
} // @name TemplateWarnings

// Empty reports whether there is nothing to warn about.
func (w TemplateWarnings) Empty() bool {
	return len(w.UnknownVariables) == 0 && len(w.MissingRequired) == 0
}

// ExtractVariablesOutput is the response of the variable extraction endpoint.
//
// swagger:model ExtractVariablesOutput
// @Description ExtractVariablesOutput lists the variables referenced by the content.
type ExtractVariablesOutput struct {
	Variables []VariableDefinition `json:"variables"`
	Warnings  *TemplateWarnings    `json:"warnings,omitempty"`
} // @name ExtractVariablesOutput

// TemplateOutput is returned by template create and update operations.
//
// swagger:model TemplateOutput
// @Description TemplateOutput wraps the stored template and its advisory warnings.
type TemplateOutput struct {
	*DocumentTemplate
	Warnings *TemplateWarnings `json:"warnings,omitempty"`
} // @name TemplateOutput

// DocumentTypeDefinition is the public view of one variable registry entry.
//
// swagger:model DocumentTypeDefinition
// @Description DocumentTypeDefinition lists the variables of a document type.
type DocumentTypeDefinition struct {
	DocumentType      string               `json:"documentType" example:"quota_certificate"`
	Description       string               `json:"description" example:"Certificate stating whether a member is up to date with quotas"`
	RequiredVariables []VariableDefinition `json:"requiredVariables"`
	OptionalVariables []VariableDefinition `json:"optionalVariables"`
} // @name DocumentTypeDefinition
