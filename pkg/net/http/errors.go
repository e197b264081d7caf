// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"errors"
	"net/http"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/gofiber/fiber/v2"
)

// WithError writes err as the HTTP response matching its type.
// Domain errors are first converted to their business error representation.
func WithError(c *fiber.Ctx, err error) error {
	err = toBusinessError(err)

	switch e := err.(type) {
	case pkg.EntityNotFoundError:
		return NotFound(c, e.Code, e.Title, e.Message)
	case pkg.EntityConflictError:
		return Conflict(c, e.Code, e.Title, e.Message)
	case pkg.ValidationError:
		return BadRequest(c, pkg.ValidationKnownFieldsError{
			Code:    e.Code,
			Title:   e.Title,
			Message: e.Message,
			Fields:  nil,
		})
	case pkg.UnprocessableOperationError:
		return UnprocessableEntity(c, e.Code, e.Title, e.Message)
	case pkg.ValidationKnownFieldsError, pkg.ValidationUnknownFieldsError:
		return BadRequest(c, e)
	case *pkg.ValidationKnownFieldsError:
		return BadRequest(c, *e)
	case pkg.ResponseError:
		return JSONResponseError(c, http.StatusBadRequest, e)
	default:
		var iErr pkg.InternalServerError

		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

		return InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}

// toBusinessError maps the typed domain errors raised below the service layer.
func toBusinessError(err error) error {
	var unknownType pkg.UnknownDocumentTypeError
	if errors.As(err, &unknownType) {
		return pkg.ValidateBusinessError(constant.ErrUnknownDocumentType, "DocumentTemplate", unknownType.DocumentType)
	}

	var notFound pkg.SubjectNotFoundError
	if errors.As(err, &notFound) {
		return pkg.ValidateBusinessError(constant.ErrSubjectNotFound, "Member", notFound.MemberID)
	}

	var persistence pkg.PersistenceError
	if errors.As(err, &persistence) {
		return pkg.ValidateInternalError(err, "GeneratedDocument")
	}

	return err
}
