// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package pongo wraps rendered documents in the print layout used for PDF output.
package pongo

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterAll registers the custom filters with pongo2. It is safe to call more than once.
func RegisterAll() error {
	registerOnce.Do(func() {
		filters := []struct {
			name string
			fn   pongo2.FilterFunction
		}{
			{"doctype_label", doctypeLabelFilter},
			{"paragraphs", paragraphsFilter},
		}

		for _, f := range filters {
			if pongo2.FilterExists(f.name) {
				continue
			}

			if err := pongo2.RegisterFilter(f.name, f.fn); err != nil {
				registerErr = fmt.Errorf("register filter %q: %w", f.name, err)
				return
			}
		}
	})

	return registerErr
}
