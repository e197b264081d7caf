// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/LerianStudio/condo-docs/pkg"
	cn "github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en2 "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

// DecodeHandlerFunc is a handler which works with withBody decorator.
// It receives a struct which was decoded by withBody decorator before.
// Ex: json -> withBody -> DecodeHandlerFunc.
type DecodeHandlerFunc func(p any, c *fiber.Ctx) error

// decoderHandler decodes payload coming from requests.
type decoderHandler struct {
	handler      DecodeHandlerFunc
	structSource any
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

var (
	unmarshalFieldPattern = regexp.MustCompile(`struct field \w+\.(\w+)`)
	unmarshalTypePattern  = regexp.MustCompile(`field (\w+) of type`)
	namespaceTailPattern  = regexp.MustCompile(`\.(.+)$`)
)

var numKinds = map[reflect.Kind]bool{
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Float32: true,
	reflect.Float64: true,
}

func newOfType(s any) any {
	t := reflect.TypeOf(s)
	v := reflect.New(t.Elem())

	return v.Interface()
}

// WithBody decodes the request body into a new value of the type of s, validates it
// and rejects unknown fields before calling h.
func WithBody(s any, h DecodeHandlerFunc) fiber.Handler {
	d := &decoderHandler{
		handler:      h,
		structSource: s,
	}

	return d.FiberHandlerFunc
}

// FiberHandlerFunc is a method on the decoderHandler struct. It decodes the incoming request's body to a Go struct,
// validates it, checks for any extraneous fields not defined in the struct, and finally calls the wrapped handler function.
func (d *decoderHandler) FiberHandlerFunc(c *fiber.Ctx) error {
	s := newOfType(d.structSource)

	bodyBytes := c.Body()

	trimmedBody := strings.TrimSpace(string(bodyBytes))
	if len(trimmedBody) == 0 || trimmedBody == "null" {
		return WithError(c, pkg.ValidateBusinessError(cn.ErrMissingRequiredFields, "", "request body"))
	}

	if err := json.Unmarshal(bodyBytes, s); err != nil {
		if strings.Contains(err.Error(), "cannot unmarshal") {
			if fieldName := extractFieldNameFromUnmarshalError(err.Error()); fieldName != "" {
				knownFields := pkg.FieldValidations{fieldName: "Invalid type for this field"}

				return WithError(c, pkg.ValidateBadRequestFieldsError(pkg.FieldValidations{}, knownFields, "", make(map[string]any)))
			}
		}

		return WithError(c, pkg.ValidateBusinessError(cn.ErrBadRequest, "", "The request body is not valid JSON."))
	}

	if err := validateTypeMismatches(bodyBytes, s); err != nil {
		return WithError(c, err)
	}

	marshaled, err := json.Marshal(s)
	if err != nil {
		return err
	}

	var originalMap, marshaledMap map[string]any

	if err := json.Unmarshal(bodyBytes, &originalMap); err != nil {
		return WithError(c, pkg.ValidateBusinessError(cn.ErrBadRequest, "", "The request body must be a JSON object."))
	}

	if err := json.Unmarshal(marshaled, &marshaledMap); err != nil {
		return err
	}

	diffFields := findUnknownFields(originalMap, marshaledMap)

	if len(diffFields) > 0 {
		err := pkg.ValidateBadRequestFieldsError(pkg.FieldValidations{}, pkg.FieldValidations{}, "", diffFields)
		return BadRequest(c, err)
	}

	if err := ValidateStruct(s); err != nil {
		return WithError(c, err)
	}

	return d.handler(s, c)
}

// findUnknownFields finds fields that are present in the original map but not in the marshaled map.
func findUnknownFields(original, marshaled map[string]any) map[string]any {
	diffFields := make(map[string]any)

	for key, value := range original {
		if numKinds[reflect.ValueOf(value).Kind()] && value == 0.0 {
			continue
		}

		marshaledValue, ok := marshaled[key]
		if !ok {
			if value == nil || value == false || value == "" {
				continue
			}

			diffFields[key] = value

			continue
		}

		switch originalValue := value.(type) {
		case map[string]any:
			if marshaledMap, ok := marshaledValue.(map[string]any); ok {
				nestedDiff := findUnknownFields(originalValue, marshaledMap)
				if len(nestedDiff) > 0 {
					diffFields[key] = nestedDiff
				}
			} else if !reflect.DeepEqual(originalValue, marshaledValue) {
				diffFields[key] = value
			}

		case []any:
			if marshaledArray, ok := marshaledValue.([]any); ok {
				arrayDiff := compareSlices(originalValue, marshaledArray)
				if len(arrayDiff) > 0 {
					diffFields[key] = arrayDiff
				}
			} else if !reflect.DeepEqual(originalValue, marshaledValue) {
				diffFields[key] = value
			}

		default:
			if !reflect.DeepEqual(value, marshaledValue) {
				diffFields[key] = value
			}
		}
	}

	return diffFields
}

// compareSlices compares two slices and returns differences.
func compareSlices(original, marshaled []any) []any {
	var diff []any

	for i, item := range original {
		if i >= len(marshaled) {
			diff = append(diff, item)
			continue
		}

		if originalMap, ok := item.(map[string]any); ok {
			if marshaledMap, ok := marshaled[i].(map[string]any); ok {
				nestedDiff := findUnknownFields(originalMap, marshaledMap)
				if len(nestedDiff) > 0 {
					diff = append(diff, nestedDiff)
				}
			}
		} else if !reflect.DeepEqual(item, marshaled[i]) {
			diff = append(diff, item)
		}
	}

	for i := len(original); i < len(marshaled); i++ {
		diff = append(diff, marshaled[i])
	}

	return diff
}

// ValidateStruct validates a struct against defined validation rules, using the validator package.
func ValidateStruct(s any) error {
	v, trans := newValidator()

	k := reflect.ValueOf(s).Kind()
	if k == reflect.Ptr {
		k = reflect.ValueOf(s).Elem().Kind()
	}

	if k != reflect.Struct {
		return nil
	}

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, fieldError := range validationErrs {
		switch fieldError.Tag() {
		case "documenttype":
			return pkg.ValidateBusinessError(cn.ErrUnknownDocumentType, "", fieldError.Value())
		case "keymax", "valuemax", "nonested":
			return pkg.ValidateBusinessError(cn.ErrBadRequest, "", fieldError.Translate(trans))
		}
	}

	return malformedRequestErr(validationErrs, trans)
}

func fields(errs validator.ValidationErrors, trans ut.Translator) pkg.FieldValidations {
	if len(errs) == 0 {
		return nil
	}

	fields := make(pkg.FieldValidations, len(errs))
	for _, e := range errs {
		fields[e.Field()] = e.Translate(trans)
	}

	return fields
}

func fieldsRequired(myMap pkg.FieldValidations) pkg.FieldValidations {
	result := make(pkg.FieldValidations)

	for key, value := range myMap {
		if strings.Contains(value, "required") {
			result[key] = value
		}
	}

	return result
}

func malformedRequestErr(err validator.ValidationErrors, trans ut.Translator) pkg.ValidationKnownFieldsError {
	invalidFieldsMap := fields(err, trans)

	requiredFields := fieldsRequired(invalidFieldsMap)

	var vErr pkg.ValidationKnownFieldsError

	_ = errors.As(pkg.ValidateBadRequestFieldsError(requiredFields, invalidFieldsMap, "", make(map[string]any)), &vErr)

	return vErr
}

//nolint:ireturn
func newValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		locale := en.New()
		uni := ut.New(locale, locale)

		trans, _ := uni.GetTranslator("en")

		v := validator.New()

		if err := en2.RegisterDefaultTranslations(v, trans); err != nil {
			panic(err)
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = v.RegisterValidation("documenttype", validateDocumentType)
		_ = v.RegisterValidation("placeholder", validatePlaceholderName)
		_ = v.RegisterValidation("keymax", validateMetadataKeyMaxLength)
		_ = v.RegisterValidation("nonested", validateMetadataNestedValues)
		_ = v.RegisterValidation("valuemax", validateMetadataValueMaxLength)

		registerTranslation(v, trans, "required", "{0} is a required field", false)
		registerTranslation(v, trans, "documenttype", "{0} must be one of the registered document types", false)
		registerTranslation(v, trans, "placeholder", "{0} may only contain letters, digits and underscores", false)
		registerTranslation(v, trans, "keymax", "{0} metadata key exceeds {1} characters", true)
		registerTranslation(v, trans, "valuemax", "{0} metadata value exceeds {1} characters", true)
		registerTranslation(v, trans, "nonested", "{0} metadata values cannot be nested objects", false)

		validate, translator = v, trans
	})

	return validate, translator
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string, withParam bool) {
	_ = v.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, text, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		if withParam {
			t, _ := ut.T(tag, formatErrorFieldName(fe.Namespace()), fe.Param())
			return t
		}

		t, _ := ut.T(tag, formatErrorFieldName(fe.Namespace()))

		return t
	})
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return templating.IsKnownDocumentType(fl.Field().String())
}

func validatePlaceholderName(fl validator.FieldLevel) bool {
	return templating.IsValidName(fl.Field().String())
}

// validateMetadataNestedValues checks if there are nested metadata structures
func validateMetadataNestedValues(fl validator.FieldLevel) bool {
	return fl.Field().Kind() != reflect.Map
}

// validateMetadataKeyMaxLength checks if metadata key (always a string) length is allowed
func validateMetadataKeyMaxLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= paramOrDefault(fl.Param(), 100)
}

// validateMetadataValueMaxLength checks metadata value max length
func validateMetadataValueMaxLength(fl validator.FieldLevel) bool {
	limit := paramOrDefault(fl.Param(), 2000)

	var value string

	switch fl.Field().Kind() {
	case reflect.Int:
		value = strconv.Itoa(int(fl.Field().Int()))
	case reflect.Float64:
		value = strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	case reflect.String:
		value = fl.Field().String()
	case reflect.Bool:
		value = strconv.FormatBool(fl.Field().Bool())
	default:
		return false
	}

	return len(value) <= limit
}

func paramOrDefault(param string, fallback int) int {
	if param == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		return fallback
	}

	return parsed
}

// formatErrorFieldName formats metadata field error names for error messages
func formatErrorFieldName(text string) string {
	matches := namespaceTailPattern.FindStringSubmatch(text)
	if len(matches) > 1 {
		return matches[1]
	}

	return text
}

// validateTypeMismatches checks if the JSON payload has type mismatches with the struct definition
func validateTypeMismatches(bodyBytes []byte, s any) error {
	var originalMap map[string]any
	if err := json.Unmarshal(bodyBytes, &originalMap); err != nil {
		return pkg.ValidateBusinessError(cn.ErrBadRequest, "", "The request body must be a JSON object.")
	}

	val := reflect.ValueOf(s)
	if val.Kind() != reflect.Ptr {
		return nil
	}

	val = val.Elem()

	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		jsonTag := fieldType.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]

		if originalValue, exists := originalMap[jsonName]; exists {
			fieldKind := field.Kind()
			if fieldKind == reflect.Ptr {
				fieldKind = fieldType.Type.Elem().Kind()
			}

			if mismatch := getTypeMismatch(originalValue, fieldKind); mismatch != "" {
				return pkg.ValidateBusinessError(cn.ErrBadRequest, "",
					fmt.Sprintf("field '%s' expects %s but received %s", jsonName, fieldKind.String(), mismatch))
			}
		}
	}

	return nil
}

// getTypeMismatch returns the JSON type received when it cannot fill a field of fieldKind.
func getTypeMismatch(originalValue any, fieldKind reflect.Kind) string {
	switch originalValue.(type) {
	case string:
		if fieldKind == reflect.Map || fieldKind == reflect.Slice || fieldKind == reflect.Bool {
			return "string"
		}
	case map[string]any:
		if isSimpleType(fieldKind) || fieldKind == reflect.Slice {
			return "object"
		}
	case []any:
		if isSimpleType(fieldKind) || fieldKind == reflect.Map {
			return "array"
		}
	case float64:
		if fieldKind == reflect.String || fieldKind == reflect.Map || fieldKind == reflect.Slice || fieldKind == reflect.Bool {
			return "number"
		}
	case bool:
		if fieldKind == reflect.String || fieldKind == reflect.Map || fieldKind == reflect.Slice {
			return "boolean"
		}
	}

	return ""
}

// isSimpleType checks if the field kind is a simple type
func isSimpleType(fieldKind reflect.Kind) bool {
	return fieldKind == reflect.String || fieldKind == reflect.Int || fieldKind == reflect.Float64 || fieldKind == reflect.Bool
}

// extractFieldNameFromUnmarshalError extracts the field name from a JSON unmarshal error
func extractFieldNameFromUnmarshalError(errorMsg string) string {
	// e.g. "json: cannot unmarshal string into Go struct field CreateBatchInput.memberIds of type []string"
	if matches := unmarshalFieldPattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
		return matches[1]
	}

	if matches := unmarshalTypePattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
		return matches[1]
	}

	return ""
}
