// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"regexp"

	"github.com/LerianStudio/condo-docs/pkg/model"
)

// placeholderPattern is the placeholder wire format: {{name}} with name made of word
// characters only. No whitespace, nesting or default values are recognised.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

var namePattern = regexp.MustCompile(`^\w+$`)

// IsValidName reports whether name can appear inside a placeholder.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// PlaceholderNames returns the distinct placeholder names of content in first-seen order.
func PlaceholderNames(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// ExtractVariables derives the variables referenced by template content.
// Every distinct placeholder becomes one required definition, in first-seen order.
// Empty or malformed content yields an empty list.
func ExtractVariables(content string) []model.VariableDefinition {
	names := PlaceholderNames(content)
	variables := make([]model.VariableDefinition, 0, len(names))

	for _, name := range names {
		variables = append(variables, NewVariableDefinition(name, true))
	}

	return variables
}
