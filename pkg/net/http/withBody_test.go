// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOfType(t *testing.T) {
	t.Parallel()

	type TestStruct struct {
		Name  string
		Value int
	}

	original := &TestStruct{Name: "original", Value: 42}
	result := newOfType(original)

	require.IsType(t, &TestStruct{}, result)

	resultStruct := result.(*TestStruct)
	assert.Equal(t, "", resultStruct.Name)
	assert.Equal(t, 0, resultStruct.Value)

	resultStruct.Name = "modified"
	assert.Equal(t, "original", original.Name)
}

func TestFindUnknownFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		original  map[string]any
		marshaled map[string]any
		expected  map[string]any
	}{
		{
			name:      "equal maps",
			original:  map[string]any{"name": "test", "value": 42.0},
			marshaled: map[string]any{"name": "test", "value": 42.0},
			expected:  map[string]any{},
		},
		{
			name:      "unknown top level field",
			original:  map[string]any{"name": "test", "unknown_field": "value"},
			marshaled: map[string]any{"name": "test"},
			expected:  map[string]any{"unknown_field": "value"},
		},
		{
			name: "unknown nested field",
			original: map[string]any{
				"variables": map[string]any{"name": "memberName", "color": "red"},
			},
			marshaled: map[string]any{
				"variables": map[string]any{"name": "memberName"},
			},
			expected: map[string]any{"variables": map[string]any{"color": "red"}},
		},
		{
			name:      "unknown field inside array element",
			original:  map[string]any{"variables": []any{map[string]any{"name": "a", "extra": true}}},
			marshaled: map[string]any{"variables": []any{map[string]any{"name": "a"}}},
			expected:  map[string]any{"variables": []any{map[string]any{"extra": true}}},
		},
		{
			name:      "zero numbers and empty values are ignored",
			original:  map[string]any{"page": 0.0, "title": "", "flag": false, "nothing": nil},
			marshaled: map[string]any{},
			expected:  map[string]any{},
		},
		{
			name:      "value changed by decoding",
			original:  map[string]any{"name": "test"},
			marshaled: map[string]any{"name": "other"},
			expected:  map[string]any{"name": "test"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, findUnknownFields(tt.original, tt.marshaled))
		})
	}
}

func TestCompareSlices(t *testing.T) {
	t.Parallel()

	assert.Empty(t, compareSlices([]any{"a", "b"}, []any{"a", "b"}))
	assert.Equal(t, []any{"c"}, compareSlices([]any{"a", "b", "c"}, []any{"a", "b"}))
	assert.Equal(t, []any{"c"}, compareSlices([]any{"a", "b"}, []any{"a", "b", "c"}))
	assert.Equal(t, []any{"x"}, compareSlices([]any{"x"}, []any{"y"}))
	assert.Equal(t,
		[]any{map[string]any{"extra": "v"}},
		compareSlices([]any{map[string]any{"k": "v", "extra": "v"}}, []any{map[string]any{"k": "v"}}))
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	validInput := func() *model.CreateTemplateInput {
		return &model.CreateTemplateInput{
			BuildingID:   "0b8a6f5c-8f0e-4a57-9a4b-3c9f6a0f7e11",
			Name:         "Arrears letter",
			DocumentType: constant.DocumentTypeArrearsLetter,
			Content:      "<p>Dear {{memberName}}</p>",
			Variables:    []model.VariableDefinition{{Name: "memberName", Type: "text"}},
			Metadata:     map[string]any{"owner": "administration"},
		}
	}

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateStruct(validInput()))
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.Name = ""
		in.Content = ""

		err := ValidateStruct(in)

		var vErr pkg.ValidationKnownFieldsError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, constant.ErrMissingFieldsInRequest.Error(), vErr.Code)
		assert.Contains(t, vErr.Fields, "name")
		assert.Contains(t, vErr.Fields, "content")
	})

	t.Run("unknown document type", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.DocumentType = "lease"

		err := ValidateStruct(in)
		assert.True(t, errors.Is(err, constant.ErrUnknownDocumentType))
	})

	t.Run("variable name must be a placeholder name", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.Variables = []model.VariableDefinition{{Name: "member name"}}

		err := ValidateStruct(in)

		var vErr pkg.ValidationKnownFieldsError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, constant.ErrBadRequest.Error(), vErr.Code)
		assert.Contains(t, vErr.Fields["name"], "letters, digits and underscores")
	})

	t.Run("metadata key too long", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.Metadata = map[string]any{strings.Repeat("k", 101): "v"}

		err := ValidateStruct(in)
		assert.True(t, errors.Is(err, constant.ErrBadRequest))
	})

	t.Run("metadata value too long", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.Metadata = map[string]any{"note": strings.Repeat("v", 2001)}

		err := ValidateStruct(in)
		assert.True(t, errors.Is(err, constant.ErrBadRequest))
	})

	t.Run("nested metadata", func(t *testing.T) {
		t.Parallel()

		in := validInput()
		in.Metadata = map[string]any{"nested": map[string]any{"a": "b"}}

		err := ValidateStruct(in)
		assert.True(t, errors.Is(err, constant.ErrBadRequest))
	})

	t.Run("non struct values are ignored", func(t *testing.T) {
		t.Parallel()

		s := "plain"
		assert.NoError(t, ValidateStruct(&s))
	})
}

func TestFieldsRequired(t *testing.T) {
	t.Parallel()

	result := fieldsRequired(pkg.FieldValidations{
		"name":    "name is a required field",
		"content": "content must be a maximum of 524288 characters",
	})

	assert.Equal(t, pkg.FieldValidations{"name": "name is a required field"}, result)
	assert.Empty(t, fieldsRequired(pkg.FieldValidations{"title": "too long"}))
}

func TestFormatErrorFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "metadata[owner]", formatErrorFieldName("CreateTemplateInput.metadata[owner]"))
	assert.Equal(t, "name", formatErrorFieldName("name"))
}

func TestParamOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, paramOrDefault("10", 5))
	assert.Equal(t, 5, paramOrDefault("", 5))
	assert.Equal(t, 5, paramOrDefault("ten", 5))
}

func TestGetTypeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		kind     reflect.Kind
		expected string
	}{
		{"string into string", "a", reflect.String, ""},
		{"string into map", "a", reflect.Map, "string"},
		{"string into slice", "a", reflect.Slice, "string"},
		{"object into string", map[string]any{}, reflect.String, "object"},
		{"object into map", map[string]any{}, reflect.Map, ""},
		{"array into string", []any{}, reflect.String, "array"},
		{"number into string", 1.0, reflect.String, "number"},
		{"number into int", 1.0, reflect.Int, ""},
		{"boolean into string", true, reflect.String, "boolean"},
		{"boolean into bool", true, reflect.Bool, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, getTypeMismatch(tt.value, tt.kind))
		})
	}
}

func TestExtractFieldNameFromUnmarshalError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "memberIds",
		extractFieldNameFromUnmarshalError("json: cannot unmarshal string into Go struct field CreateBatchInput.memberIds of type []string"))
	assert.Equal(t, "title",
		extractFieldNameFromUnmarshalError("json: cannot unmarshal number into field title of type string"))
	assert.Equal(t, "", extractFieldNameFromUnmarshalError("unexpected end of JSON input"))
}

func TestValidateTypeMismatches(t *testing.T) {
	t.Parallel()

	in := &model.CreateTemplateInput{}

	assert.NoError(t, validateTypeMismatches([]byte(`{"name":"x","metadata":{"a":"b"}}`), in))

	err := validateTypeMismatches([]byte(`{"metadata":"not-an-object"}`), in)
	assert.True(t, errors.Is(err, constant.ErrBadRequest))

	assert.NoError(t, validateTypeMismatches([]byte(`{"name":"x"}`), *in))
	assert.Error(t, validateTypeMismatches([]byte(`[1,2]`), in))
}

func TestWithBody(t *testing.T) {
	t.Parallel()

	validBody := `{
		"buildingId": "0b8a6f5c-8f0e-4a57-9a4b-3c9f6a0f7e11",
		"name": "Arrears letter",
		"documentType": "arrears_letter",
		"content": "<p>Dear {{memberName}}</p>"
	}`

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid payload reaches the handler",
			body:           validBody,
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "empty body",
			body:           "",
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   constant.ErrMissingRequiredFields.Error(),
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   constant.ErrBadRequest.Error(),
		},
		{
			name:           "unknown field",
			body:           strings.Replace(validBody, `"name"`, `"color": "blue", "name"`, 1),
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   constant.ErrUnexpectedFieldsInRequest.Error(),
		},
		{
			name:           "missing required field",
			body:           `{"buildingId": "0b8a6f5c-8f0e-4a57-9a4b-3c9f6a0f7e11", "documentType": "arrears_letter", "content": "x"}`,
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   constant.ErrMissingFieldsInRequest.Error(),
		},
		{
			name:           "unknown document type",
			body:           strings.Replace(validBody, "arrears_letter", "lease", 1),
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   constant.ErrUnknownDocumentType.Error(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			app.Post("/templates", WithBody(new(model.CreateTemplateInput), func(p any, c *fiber.Ctx) error {
				in, ok := p.(*model.CreateTemplateInput)
				require.True(t, ok)

				return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": in.Name})
			}))

			req := httptest.NewRequest(fiber.MethodPost, "/templates", bytes.NewBufferString(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.expectedCode == "" {
				assert.Contains(t, string(raw), "Arrears letter")
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.expectedCode, body["code"])
		})
	}
}
