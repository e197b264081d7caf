// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler fiber.Handler
		status  int
		code    string
	}{
		{name: "ok", handler: func(c *fiber.Ctx) error { return OK(c, fiber.Map{"id": "1"}) }, status: stdhttp.StatusOK},
		{name: "created", handler: func(c *fiber.Ctx) error { return Created(c, fiber.Map{"id": "1"}) }, status: stdhttp.StatusCreated},
		{name: "accepted", handler: func(c *fiber.Ctx) error { return Accepted(c, fiber.Map{"id": "1"}) }, status: stdhttp.StatusAccepted},
		{name: "bad request", handler: func(c *fiber.Ctx) error { return BadRequest(c, fiber.Map{"code": "DOC-0008"}) }, status: stdhttp.StatusBadRequest, code: "DOC-0008"},
		{name: "not found", handler: func(c *fiber.Ctx) error { return NotFound(c, "DOC-0005", "Entity Not Found", "missing") }, status: stdhttp.StatusNotFound, code: "DOC-0005"},
		{name: "conflict", handler: func(c *fiber.Ctx) error { return Conflict(c, "DOC-0020", "Conflict", "dup") }, status: stdhttp.StatusConflict, code: "DOC-0020"},
		{name: "unprocessable", handler: func(c *fiber.Ctx) error { return UnprocessableEntity(c, "DOC-0013", "Inactive", "off") }, status: stdhttp.StatusUnprocessableEntity, code: "DOC-0013"},
		{name: "internal", handler: func(c *fiber.Ctx) error { return InternalServerError(c, "DOC-0009", "Internal", "boom") }, status: stdhttp.StatusInternalServerError, code: "DOC-0009"},
		{name: "unavailable", handler: func(c *fiber.Ctx) error { return ServiceUnavailable(c, fiber.Map{"status": "down"}) }, status: stdhttp.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			app.Get("/test", tt.handler)

			resp, err := app.Test(httptest.NewRequest(stdhttp.MethodGet, "/test", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.code != "" {
				var body map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.code, body["code"])
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Delete("/test", func(c *fiber.Ctx) error { return NoContent(c) })

	resp, err := app.Test(httptest.NewRequest(stdhttp.MethodDelete, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusNoContent, resp.StatusCode)
}
