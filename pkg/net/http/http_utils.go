// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	"github.com/google/uuid"
)

// QueryHeader entity from query parameter from get apis
type QueryHeader struct {
	BuildingID   uuid.UUID
	DocumentType string
	IsActive     *bool
	Status       string
	TemplateID   uuid.UUID
	BatchID      uuid.UUID
	Limit        int
	Page         int
	SortOrder    string
	CreatedAt    time.Time
}

// Skip is the number of records before the requested page.
func (qh *QueryHeader) Skip() int {
	if qh.Page < 1 {
		return 0
	}

	return (qh.Page - 1) * qh.Limit
}

// ValidateParameters validate and return struct of default parameters
func ValidateParameters(params map[string]string) (*QueryHeader, error) {
	query := &QueryHeader{
		Limit:     constant.DefaultPaginationLimit,
		Page:      constant.DefaultPaginationPage,
		SortOrder: constant.SortOrderDesc,
	}

	for key, value := range params {
		var err error

		switch key {
		case "buildingId":
			query.BuildingID, err = parseUUID(value, key)
		case "templateId":
			query.TemplateID, err = parseUUID(value, key)
		case "batchId":
			query.BatchID, err = parseUUID(value, key)
		case "documentType":
			if !templating.IsKnownDocumentType(value) {
				return nil, pkg.ValidateBusinessError(constant.ErrUnknownDocumentType, "", value)
			}

			query.DocumentType = value
		case "isActive":
			active, parseErr := strconv.ParseBool(value)
			if parseErr != nil {
				return nil, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", key)
			}

			query.IsActive = &active
		case "status":
			query.Status = value
		case "limit":
			query.Limit, err = parsePositiveInt(value, key)
		case "page":
			query.Page, err = parsePositiveInt(value, key)
		case "sortOrder":
			query.SortOrder = strings.ToLower(value)
		case "createdAt":
			query.CreatedAt, err = time.Parse("2006-01-02", value)
			if err != nil {
				err = pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", key)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	if err := validatePagination(query.SortOrder, query.Limit); err != nil {
		return nil, err
	}

	return query, nil
}

// parsePositiveInt parses a string as an integer and validates that the result
// is at least 1. It returns a validation error referencing paramName on failure.
func parsePositiveInt(value, paramName string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", paramName)
	}

	return parsed, nil
}

func parseUUID(value, paramName string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", paramName)
	}

	return id, nil
}

func validatePagination(sortOrder string, limit int) error {
	if limit > constant.DefaultMaxPaginationLimit {
		return pkg.ValidateBusinessError(constant.ErrPaginationLimitExceeded, "", constant.DefaultMaxPaginationLimit)
	}

	if sortOrder != constant.SortOrderAsc && sortOrder != constant.SortOrderDesc {
		return pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", "sortOrder")
	}

	return nil
}
