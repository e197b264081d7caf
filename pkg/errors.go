// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/condo-docs/pkg/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a Database not found, cache not found or any other repository.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// ValidationError records an error indicating the request or the entity is not valid.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// EntityConflictError records an error indicating an entity already exists in some repository
// You can use it to representing a Database conflict, cache or any other repository.
type EntityConflictError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityConflictError) Error() string {
	if e.Err != nil && strings.TrimSpace(e.Message) == "" {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityConflictError) Unwrap() error {
	return e.Err
}

// UnprocessableOperationError indicates an operation that couldn't be performant because it's invalid.
type UnprocessableOperationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

func (e UnprocessableOperationError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e UnprocessableOperationError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure of the server or one of its collaborators.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// UnknownDocumentTypeError is returned when a document type has no entry in the variable registry.
// It is fatal to the single call that raised it, never to a whole batch.
type UnknownDocumentTypeError struct {
	DocumentType string
}

func (e UnknownDocumentTypeError) Error() string {
	return fmt.Sprintf("%s - unknown document type %q", constant.ErrUnknownDocumentType.Error(), e.DocumentType)
}

func (e UnknownDocumentTypeError) Unwrap() error {
	return constant.ErrUnknownDocumentType
}

// SubjectNotFoundError is returned when a subject reference cannot be dereferenced
// to a member and building pair.
type SubjectNotFoundError struct {
	MemberID   string
	BuildingID string
	Err        error
}

func (e SubjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s - subject not found (member %q, building %q)", constant.ErrSubjectNotFound.Error(), e.MemberID, e.BuildingID)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel and the provider error to errors.Is and errors.As.
func (e SubjectNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{constant.ErrSubjectNotFound}
	}

	return []error{constant.ErrSubjectNotFound, e.Err}
}

// PersistenceError is returned when the document store fails to save a generated document.
type PersistenceError struct {
	Operation string
	Err       error
}

func (e PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s - document store %s failed", constant.ErrPersistence.Error(), e.Operation)
	}

	return fmt.Sprintf("%s - document store %s failed: %s", constant.ErrPersistence.Error(), e.Operation, e.Err.Error())
}

func (e PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{constant.ErrPersistence}
	}

	return []error{constant.ErrPersistence, e.Err}
}

// ResponseError is a struct used to return errors to the client.
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the message of the ResponseError.
func (r ResponseError) Error() string {
	return r.Message
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string           `json:"entityType,omitempty"`
	Title      string           `json:"title,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Fields     FieldValidations `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// FieldValidations is a map of known fields and their validation errors.
type FieldValidations map[string]string

// ValidationUnknownFieldsError records an error that occurred because the request carried unexpected fields.
type ValidationUnknownFieldsError struct {
	EntityType string        `json:"entityType,omitempty"`
	Title      string        `json:"title,omitempty"`
	Code       string        `json:"code,omitempty"`
	Message    string        `json:"message,omitempty"`
	Fields     UnknownFields `json:"fields,omitempty"`
}

// Error returns the error message for a ValidationUnknownFieldsError.
func (r ValidationUnknownFieldsError) Error() string {
	return r.Message
}

// UnknownFields is a map of unknown fields and their error messages.
type UnknownFields map[string]any

// IsBusinessError reports whether err is a client or domain error that a retry cannot fix.
func IsBusinessError(err error) bool {
	var (
		validationErr    ValidationError
		notFoundErr      EntityNotFoundError
		conflictErr      EntityConflictError
		unprocessableErr UnprocessableOperationError
		unknownTypeErr   UnknownDocumentTypeError
		knownFieldsErr   ValidationKnownFieldsError
		unknownFieldsErr ValidationUnknownFieldsError
	)

	return errors.As(err, &validationErr) ||
		errors.As(err, &notFoundErr) ||
		errors.As(err, &conflictErr) ||
		errors.As(err, &unprocessableErr) ||
		errors.As(err, &unknownTypeErr) ||
		errors.As(err, &knownFieldsErr) ||
		errors.As(err, &unknownFieldsErr)
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBadRequestFieldsError validates the error and returns the appropriate bad request error code, title, message, and the invalid fields.
func ValidateBadRequestFieldsError(requiredFields, knownInvalidFields map[string]string, entityType string, unknownFields map[string]any) error {
	if len(unknownFields) == 0 && len(knownInvalidFields) == 0 && len(requiredFields) == 0 {
		return errors.New("expected knownInvalidFields, unknownFields and requiredFields to be non-empty")
	}

	if len(unknownFields) > 0 {
		return ValidationUnknownFieldsError{
			EntityType: entityType,
			Code:       constant.ErrUnexpectedFieldsInRequest.Error(),
			Title:      "Unexpected Fields in the Request",
			Message:    "The request body contains more fields than expected. Please send only the allowed fields as per the documentation. The unexpected fields are listed in the fields object.",
			Fields:     unknownFields,
		}
	}

	if len(requiredFields) > 0 {
		return ValidationKnownFieldsError{
			EntityType: entityType,
			Code:       constant.ErrMissingFieldsInRequest.Error(),
			Title:      "Missing Fields in Request",
			Message:    "Your request is missing one or more required fields. Please refer to the documentation to ensure all necessary fields are included in your request.",
			Fields:     requiredFields,
		}
	}

	return ValidationKnownFieldsError{
		EntityType: entityType,
		Code:       constant.ErrBadRequest.Error(),
		Title:      "Bad Request",
		Message:    "The server could not understand the request due to malformed syntax. Please check the listed fields and try again.",
		Fields:     knownInvalidFields,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// Errors that are already typed, or that have no mapping, are returned unchanged.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMissingRequiredFields: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingRequiredFields.Error(),
			Title:      "Missing Required Fields",
			Message:    fmt.Sprintf("The %s is missing required fields: %v.", entityType, args),
			Err:        err,
		},
		constant.ErrUnknownDocumentType: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrUnknownDocumentType.Error(),
			Title:      "Unknown Document Type",
			Message:    fmt.Sprintf("The document type %v is not supported. Please use one of the types listed by GET /v1/document-types.", args),
			Err:        err,
		},
		constant.ErrSubjectNotFound: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrSubjectNotFound.Error(),
			Title:      "Subject Not Found",
			Message:    fmt.Sprintf("The member %v could not be found together with its building. Please verify the member ID and try again.", args),
			Err:        err,
		},
		constant.ErrEntityNotFound: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrEntityNotFound.Error(),
			Title:      "Entity Not Found",
			Message:    "No entity was found for the given ID. Please make sure to use the correct ID for the entity you are trying to manage.",
			Err:        err,
		},
		constant.ErrBadRequest: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrBadRequest.Error(),
			Title:      "Bad Request",
			Message:    fmt.Sprint(args...),
			Err:        err,
		},
		constant.ErrInvalidPathParameter: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidPathParameter.Error(),
			Title:      "Invalid Path Parameter",
			Message:    fmt.Sprintf("The provided path parameter %v is not in the expected format. Please ensure the parameter adheres to the required format and try again.", args),
			Err:        err,
		},
		constant.ErrInvalidQueryParameter: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidQueryParameter.Error(),
			Title:      "Invalid Query Parameter",
			Message:    fmt.Sprintf("One or more query parameters are in an incorrect format. Please check the following parameters '%v' and ensure they meet the required format before trying again.", args),
			Err:        err,
		},
		constant.ErrPaginationLimitExceeded: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrPaginationLimitExceeded.Error(),
			Title:      "Pagination Limit Exceeded",
			Message:    fmt.Sprintf("The pagination limit exceeds the maximum allowed of %v items per page. Please verify the limit and try again.", args...),
			Err:        err,
		},
		constant.ErrTemplateInactive: UnprocessableOperationError{
			EntityType: entityType,
			Code:       constant.ErrTemplateInactive.Error(),
			Title:      "Template Inactive",
			Message:    "The template is not active. Activate it before generating documents from it.",
			Err:        err,
		},
		constant.ErrEmptyBatch: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrEmptyBatch.Error(),
			Title:      "Empty Batch",
			Message:    "A batch must target at least one member.",
			Err:        err,
		},
		constant.ErrBatchSizeExceeded: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrBatchSizeExceeded.Error(),
			Title:      "Batch Size Exceeded",
			Message:    fmt.Sprintf("A batch can target at most %v members. Please split the selection and try again.", args...),
			Err:        err,
		},
		constant.ErrBatchAlreadyFinished: UnprocessableOperationError{
			EntityType: entityType,
			Code:       constant.ErrBatchAlreadyFinished.Error(),
			Title:      "Batch Already Finished",
			Message:    "The batch has already finished and can no longer be cancelled.",
			Err:        err,
		},
		constant.ErrInvalidSendMethod: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidSendMethod.Error(),
			Title:      "Invalid Send Method",
			Message:    fmt.Sprintf("The send method %v is not supported. Use download, email or print.", args),
			Err:        err,
		},
		constant.ErrDocumentWithoutPDF: UnprocessableOperationError{
			EntityType: entityType,
			Code:       constant.ErrDocumentWithoutPDF.Error(),
			Title:      "Document Without PDF",
			Message:    "The document has no PDF rendition. Only documents generated for download or print have one.",
			Err:        err,
		},
		constant.ErrDuplicateVariableName: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrDuplicateVariableName.Error(),
			Title:      "Duplicate Variable Name",
			Message:    fmt.Sprintf("The variable %v is declared more than once. Variable names must be unique within a template.", args...),
			Err:        err,
		},
		constant.ErrDuplicateBatchMember: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrDuplicateBatchMember.Error(),
			Title:      "Duplicate Batch Member",
			Message:    fmt.Sprintf("The member %v is listed more than once. A batch generates one document per member.", args...),
			Err:        err,
		},
		constant.ErrTemplateBuildingMismatch: UnprocessableOperationError{
			EntityType: entityType,
			Code:       constant.ErrTemplateBuildingMismatch.Error(),
			Title:      "Template Building Mismatch",
			Message:    fmt.Sprintf("The member %v does not belong to the building of the template.", args),
			Err:        err,
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
