// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"strings"
	"testing"
)

var fuzzSeeds = []string{
	"",
	"Hello {{memberName}}, you owe {{arrearAmount}}",
	"{{memberName",
	"memberName}}",
	"{{{{memberName}}}}",
	"{{ memberName }}",
	"{{}}",
	"{{member.name}}",
	"\x00\x01{{a}}\x02",
	"{{你好}}",
	"{{🚀}}",
	strings.Repeat("{{a}}", 500),
	strings.Repeat("{", 1000) + "x" + strings.Repeat("}", 1000),
	"<script>alert('{{memberName}}')</script>",
}

// FuzzExtractVariables checks the extractor never panics and only returns distinct word-character names.
func FuzzExtractVariables(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, content string) {
		vars := ExtractVariables(content)

		seen := map[string]bool{}
		for _, v := range vars {
			if v.Name == "" {
				t.Fatalf("empty variable name extracted from %q", content)
			}

			if seen[v.Name] {
				t.Fatalf("duplicate variable %q extracted from %q", v.Name, content)
			}

			seen[v.Name] = true

			if !strings.Contains(content, "{{"+v.Name+"}}") {
				t.Fatalf("variable %q is not a placeholder of %q", v.Name, content)
			}
		}
	})
}

// FuzzRender checks rendering is total and resolves every recognised placeholder.
func FuzzRender(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed, "value")
	}

	f.Fuzz(func(t *testing.T, content, value string) {
		if left := PlaceholderNames(Render(content, nil)); len(left) != 0 {
			t.Fatalf("placeholders %v survived rendering %q", left, content)
		}

		vars := map[string]string{}
		for _, name := range PlaceholderNames(content) {
			vars[name] = strings.NewReplacer("{", "", "}", "", "[", "", "]", "").Replace(value)
		}

		if got := MissingVariables(content, vars); len(got) != 0 {
			t.Fatalf("variables %v still missing after full coverage of %q", got, content)
		}

		for _, name := range PlaceholderNames(content) {
			if strings.Contains(Render(content, vars), MissingPlaceholder(name)) && !strings.Contains(content, MissingPlaceholder(name)) {
				t.Fatalf("placeholder %q rendered as missing despite a value", name)
			}
		}
	})
}
