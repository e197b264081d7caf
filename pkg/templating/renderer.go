// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

// MissingPlaceholder is what a placeholder without a value renders to.
func MissingPlaceholder(name string) string {
	return "[" + name + "]"
}

// Render substitutes every {{name}} in content with variables[name]. A name with no
// entry renders as [name] so missing data stays visible in the output. Render never
// fails and leaves content without placeholders unchanged.
func Render(content string, variables map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := token[2 : len(token)-2]

		if value, ok := variables[name]; ok {
			return value
		}

		return MissingPlaceholder(name)
	})
}

// MissingVariables returns the placeholders of content that variables cannot fill,
// in first-seen order.
func MissingVariables(content string, variables map[string]string) []string {
	var missing []string

	for _, name := range PlaceholderNames(content) {
		if _, ok := variables[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}
