// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import (
	"errors"
)

// List of errors that can be returned.
// Standardized error codes, mapped to typed errors by pkg.ValidateBusinessError.
var (
	ErrMissingRequiredFields     = errors.New("DOC-0001")
	ErrUnknownDocumentType       = errors.New("DOC-0002")
	ErrSubjectNotFound           = errors.New("DOC-0003")
	ErrPersistence               = errors.New("DOC-0004")
	ErrEntityNotFound            = errors.New("DOC-0005")
	ErrInvalidPathParameter      = errors.New("DOC-0006")
	ErrInvalidQueryParameter     = errors.New("DOC-0007")
	ErrBadRequest                = errors.New("DOC-0008")
	ErrInternalServer            = errors.New("DOC-0009")
	ErrUnexpectedFieldsInRequest = errors.New("DOC-0010")
	ErrMissingFieldsInRequest    = errors.New("DOC-0011")
	ErrPaginationLimitExceeded   = errors.New("DOC-0012")
	ErrTemplateInactive          = errors.New("DOC-0013")
	ErrEmptyBatch                = errors.New("DOC-0014")
	ErrBatchSizeExceeded         = errors.New("DOC-0015")
	ErrBatchCancelled            = errors.New("DOC-0016")
	ErrBatchAlreadyFinished      = errors.New("DOC-0017")
	ErrInvalidSendMethod         = errors.New("DOC-0018")
	ErrDocumentWithoutPDF        = errors.New("DOC-0019")
	ErrDuplicateVariableName     = errors.New("DOC-0020")
	ErrTemplateBuildingMismatch  = errors.New("DOC-0021")
	ErrDuplicateBatchMember      = errors.New("DOC-0022")
)
