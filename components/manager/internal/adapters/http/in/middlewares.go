// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/net/http"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// UUIDPathParameter is the default name of id path parameters.
var UUIDPathParameter = "id"

// SecurityHeaders sets standard HTTP security headers on every response.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "0")

		return c.Next()
	}
}

// RecoverMiddleware turns a panicking handler into a 500 response.
func RecoverMiddleware() fiber.Handler {
	return recover.New()
}

// WithRequestTracking stores the logger, the tracer and the request id in the
// request's user context. The request id is taken from the X-Request-Id header
// or generated, and echoed on the response.
func WithRequestTracking(logger log.Logger, tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(fiber.HeaderXRequestID, reqID)

		ctx := pkg.ContextWithLogger(c.UserContext(), logger)
		ctx = pkg.ContextWithTracer(ctx, tracer)
		ctx = pkg.ContextWithRequestID(ctx, reqID)

		c.SetUserContext(ctx)

		return c.Next()
	}
}

// WithAccessLog logs one line per request once the handler chain has returned.
func WithAccessLog(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		logger.Infof("%s %s %d %s request_id=%s", c.Method(), c.Path(), status,
			time.Since(start).Round(time.Microsecond), c.GetRespHeader(fiber.HeaderXRequestID))

		return err
	}
}

// ParseUUIDPathParam validates the named path parameter as a UUID and stores the
// parsed value in c.Locals(paramName).
func ParseUUIDPathParam(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, err := uuid.Parse(c.Params(paramName))
		if err != nil {
			return http.WithError(c, pkg.ValidateBusinessError(constant.ErrInvalidPathParameter, "", paramName))
		}

		c.Locals(paramName, parsed)

		return c.Next()
	}
}

// ParsePathParametersUUID validates the "id" path parameter.
func ParsePathParametersUUID(c *fiber.Ctx) error {
	return ParseUUIDPathParam(UUIDPathParameter)(c)
}
