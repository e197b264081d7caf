// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityNotFoundError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      EntityNotFoundError
		expected string
	}{
		{
			name:     "With message",
			err:      EntityNotFoundError{Message: "custom message"},
			expected: "custom message",
		},
		{
			name:     "With entity type, no message",
			err:      EntityNotFoundError{EntityType: "DocumentTemplate"},
			expected: "Entity DocumentTemplate not found",
		},
		{
			name:     "With wrapped error, no message",
			err:      EntityNotFoundError{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
		{
			name:     "Empty - default message",
			err:      EntityNotFoundError{},
			expected: "entity not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DOC-0002 - bad type", ValidationError{Code: "DOC-0002", Message: "bad type"}.Error())
	assert.Equal(t, "only message", ValidationError{Message: "only message"}.Error())
}

func TestUnknownDocumentTypeError(t *testing.T) {
	t.Parallel()

	err := error(UnknownDocumentTypeError{DocumentType: "lease"})

	assert.True(t, errors.Is(err, constant.ErrUnknownDocumentType))
	assert.Contains(t, err.Error(), `"lease"`)

	var target UnknownDocumentTypeError
	require.True(t, errors.As(fmt.Errorf("resolve: %w", err), &target))
	assert.Equal(t, "lease", target.DocumentType)
}

func TestSubjectNotFoundError(t *testing.T) {
	t.Parallel()

	cause := errors.New("no rows in result set")
	err := error(SubjectNotFoundError{MemberID: "m-1", BuildingID: "b-1", Err: cause})

	assert.True(t, errors.Is(err, constant.ErrSubjectNotFound))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "m-1")
	assert.Contains(t, err.Error(), "no rows in result set")

	bare := SubjectNotFoundError{MemberID: "m-2"}
	assert.True(t, errors.Is(bare, constant.ErrSubjectNotFound))
}

func TestPersistenceError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := error(PersistenceError{Operation: "save", Err: cause})

	assert.True(t, errors.Is(err, constant.ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DOC-0004 - document store save failed: connection reset", err.Error())
	assert.Equal(t, "DOC-0004 - document store save failed", PersistenceError{Operation: "save"}.Error())
}

func TestValidateBusinessError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		args         []any
		expectedType any
		expectedCode string
	}{
		{
			name:         "Unknown document type maps to validation error",
			err:          constant.ErrUnknownDocumentType,
			args:         []any{"lease"},
			expectedType: ValidationError{},
			expectedCode: "DOC-0002",
		},
		{
			name:         "Subject not found maps to not found",
			err:          constant.ErrSubjectNotFound,
			args:         []any{"m-1"},
			expectedType: EntityNotFoundError{},
			expectedCode: "DOC-0003",
		},
		{
			name:         "Entity not found",
			err:          constant.ErrEntityNotFound,
			expectedType: EntityNotFoundError{},
			expectedCode: "DOC-0005",
		},
		{
			name:         "Inactive template is unprocessable",
			err:          constant.ErrTemplateInactive,
			expectedType: UnprocessableOperationError{},
			expectedCode: "DOC-0013",
		},
		{
			name:         "Batch size exceeded",
			err:          constant.ErrBatchSizeExceeded,
			args:         []any{constant.MaxBatchSubjects},
			expectedType: ValidationError{},
			expectedCode: "DOC-0015",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ValidateBusinessError(tt.err, "DocumentTemplate", tt.args...)

			assert.IsType(t, tt.expectedType, got)
			assert.True(t, errors.Is(got, tt.err), "mapped error must still match its sentinel")

			switch e := got.(type) {
			case ValidationError:
				assert.Equal(t, tt.expectedCode, e.Code)
			case EntityNotFoundError:
				assert.Equal(t, tt.expectedCode, e.Code)
			case UnprocessableOperationError:
				assert.Equal(t, tt.expectedCode, e.Code)
			}
		})
	}
}

func TestValidateBusinessError_Unmapped(t *testing.T) {
	t.Parallel()

	original := errors.New("something else")
	assert.Equal(t, original, ValidateBusinessError(original, "DocumentTemplate"))
}

func TestValidateBadRequestFieldsError(t *testing.T) {
	t.Parallel()

	err := ValidateBadRequestFieldsError(nil, nil, "DocumentTemplate", nil)
	require.Error(t, err)

	err = ValidateBadRequestFieldsError(nil, nil, "DocumentTemplate", map[string]any{"foo": "bar"})
	assert.IsType(t, ValidationUnknownFieldsError{}, err)

	err = ValidateBadRequestFieldsError(map[string]string{"name": "name is a required field"}, nil, "DocumentTemplate", nil)
	require.IsType(t, ValidationKnownFieldsError{}, err)
	assert.Equal(t, constant.ErrMissingFieldsInRequest.Error(), err.(ValidationKnownFieldsError).Code)

	err = ValidateBadRequestFieldsError(nil, map[string]string{"documentType": "invalid"}, "DocumentTemplate", nil)
	require.IsType(t, ValidationKnownFieldsError{}, err)
	assert.Equal(t, constant.ErrBadRequest.Error(), err.(ValidationKnownFieldsError).Code)
}

func TestValidateInternalError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := ValidateInternalError(cause, "GeneratedDocument")

	require.IsType(t, InternalServerError{}, err)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, constant.ErrInternalServer.Error(), err.(InternalServerError).Code)
}

func TestIsBusinessError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "plain error", err: errors.New("connection reset"), expected: false},
		{name: "validation", err: ValidateBusinessError(constant.ErrBadRequest, "BatchMessage", "x"), expected: true},
		{name: "not found", err: ValidateBusinessError(constant.ErrEntityNotFound, "DocumentTemplate"), expected: true},
		{name: "wrapped unprocessable", err: fmt.Errorf("run: %w", ValidateBusinessError(constant.ErrTemplateInactive, "DocumentTemplate")), expected: true},
		{name: "unknown document type", err: UnknownDocumentTypeError{DocumentType: "memo"}, expected: true},
		{name: "unknown fields", err: ValidationUnknownFieldsError{}, expected: true},
		{name: "internal", err: ValidateInternalError(errors.New("boom"), "DocumentTemplate"), expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsBusinessError(tt.err))
		})
	}
}
