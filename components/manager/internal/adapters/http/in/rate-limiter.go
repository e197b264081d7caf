// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitConfig holds the three independent rate limit tiers.
//   - GlobalMax: reads
//   - DownloadMax: PDF downloads, the most expensive reads
//   - WriteMax: POST, PATCH and DELETE, which include batch submissions
//
// Storage is optional; a Redis backend shares the counters between replicas.
type RateLimitConfig struct {
	Enabled     bool
	GlobalMax   int
	DownloadMax int
	WriteMax    int
	Window      time.Duration
	Storage     RateLimitStorage
}

const rateLimitCode = "DOC-0429"

func isDownloadPath(path string) bool {
	return strings.HasSuffix(path, "/download")
}

func isWriteMethod(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}

	return false
}

// RateLimiterMiddleware picks a tier per request and counts it per client IP.
// Health, readiness and version endpoints are never limited. When cfg.Enabled is
// false every request passes through.
func RateLimiterMiddleware(cfg RateLimitConfig) fiber.Handler {
	if !cfg.Enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	reached := newRateLimitReachedHandler(cfg.Window)

	tier := func(name string, maxRequests int) fiber.Handler {
		return limiter.New(limiter.Config{
			Max:        maxRequests,
			Expiration: cfg.Window,
			Storage:    cfg.Storage,
			KeyGenerator: func(c *fiber.Ctx) string {
				return "ratelimit:" + name + ":" + c.IP()
			},
			LimitReached: reached,
		})
	}

	global := tier("global", cfg.GlobalMax)
	download := tier("download", cfg.DownloadMax)
	write := tier("write", cfg.WriteMax)

	return func(c *fiber.Ctx) error {
		path := c.Path()

		switch {
		case path == "/health" || path == "/ready" || path == "/version":
			return c.Next()
		case isDownloadPath(path):
			return download(c)
		case isWriteMethod(c.Method()):
			return write(c)
		default:
			return global(c)
		}
	}
}

func newRateLimitReachedHandler(window time.Duration) fiber.Handler {
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(c *fiber.Ctx) error {
		if c.GetRespHeader(fiber.HeaderRetryAfter) == "" {
			c.Set(fiber.HeaderRetryAfter, retryAfter)
		}

		return c.Status(fiber.StatusTooManyRequests).JSON(pkg.ResponseError{
			Code:    rateLimitCode,
			Title:   "Too Many Requests",
			Message: "Rate limit exceeded. Please retry after " + retryAfter + " seconds.",
		})
	}
}
