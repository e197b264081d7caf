// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"net/http"

	"github.com/LerianStudio/condo-docs/pkg"

	"github.com/gofiber/fiber/v2"
)

// OK sends an HTTP 200 response with s as JSON body.
func OK(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusOK).JSON(s)
}

// Created sends an HTTP 201 response with s as JSON body.
func Created(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusCreated).JSON(s)
}

// Accepted sends an HTTP 202 response with s as JSON body.
func Accepted(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusAccepted).JSON(s)
}

// NoContent sends an HTTP 204 response without body.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// BadRequest sends an HTTP 400 Bad Request response with a custom body.
func BadRequest(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusBadRequest).JSON(s)
}

// NotFound sends an HTTP 404 Not Found response with a custom code, title and message.
func NotFound(c *fiber.Ctx, code, title, message string) error {
	return JSONResponseError(c, http.StatusNotFound, pkg.ResponseError{Code: code, Title: title, Message: message})
}

// Conflict sends an HTTP 409 Conflict response with a custom code, title and message.
func Conflict(c *fiber.Ctx, code, title, message string) error {
	return JSONResponseError(c, http.StatusConflict, pkg.ResponseError{Code: code, Title: title, Message: message})
}

// UnprocessableEntity sends an HTTP 422 Unprocessable Entity response with a custom code, title and message.
func UnprocessableEntity(c *fiber.Ctx, code, title, message string) error {
	return JSONResponseError(c, http.StatusUnprocessableEntity, pkg.ResponseError{Code: code, Title: title, Message: message})
}

// InternalServerError sends an HTTP 500 Internal Server Error response.
func InternalServerError(c *fiber.Ctx, code, title, message string) error {
	return JSONResponseError(c, http.StatusInternalServerError, pkg.ResponseError{Code: code, Title: title, Message: message})
}

// ServiceUnavailable sends an HTTP 503 response with s as JSON body.
func ServiceUnavailable(c *fiber.Ctx, s any) error {
	return c.Status(http.StatusServiceUnavailable).JSON(s)
}

// JSONResponseError sends err as JSON with the given status.
func JSONResponseError(c *fiber.Ctx, status int, err pkg.ResponseError) error {
	return c.Status(status).JSON(err)
}
