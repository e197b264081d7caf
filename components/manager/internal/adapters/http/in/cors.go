// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORSConfig holds the comma-separated CORS settings loaded from the environment.
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// CORSMiddleware configures CORS with explicit origins. Malformed origins and empty
// list segments are dropped before they reach cors.New, which panics on them.
func CORSMiddleware(cfg CORSConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  cleanList(cfg.AllowedOrigins, isAllowedOrigin),
		AllowMethods:  cleanList(cfg.AllowedMethods, nil),
		AllowHeaders:  cleanList(cfg.AllowedHeaders, nil),
		ExposeHeaders: "Content-Disposition",
		Next:          isInfrastructurePath,
	})
}

// isInfrastructurePath matches the routes that never serve browsers cross-origin.
func isInfrastructurePath(c *fiber.Ctx) bool {
	path := c.Path()

	switch path {
	case "/health", "/ready", "/version":
		return true
	}

	return strings.HasPrefix(path, "/swagger")
}

// cleanList trims every segment of a comma-separated list, drops empty segments
// and, with keep, the segments keep rejects.
func cleanList(input string, keep func(string) bool) string {
	var out []string

	for _, p := range strings.Split(input, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if keep != nil && !keep(p) {
			continue
		}

		out = append(out, p)
	}

	return strings.Join(out, ",")
}

// isAllowedOrigin accepts "*" and bare scheme://host[:port] origins.
func isAllowedOrigin(origin string) bool {
	if origin == "*" {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	if parsed.Path != "" && parsed.Path != "/" {
		return false
	}

	return parsed.RawQuery == "" && parsed.Fragment == "" && parsed.User == nil
}
