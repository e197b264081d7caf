// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"testing"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []string{},
		},
		{
			name:     "no placeholders",
			content:  "<p>Dear resident</p>",
			expected: []string{},
		},
		{
			name:     "first-seen order with duplicates",
			content:  "Hello {{memberName}}, you owe {{arrearAmount}}. {{memberName}}, pay by {{oldestDueDate}}.",
			expected: []string{"memberName", "arrearAmount", "oldestDueDate"},
		},
		{
			name:     "whitespace inside braces is not a placeholder",
			content:  "{{ memberName }} {{apartmentNumber}}",
			expected: []string{"apartmentNumber"},
		},
		{
			name:     "dots and dashes are not word characters",
			content:  "{{member.name}} {{member-name}} {{member_name}}",
			expected: []string{"member_name"},
		},
		{
			name:     "unclosed and nested braces",
			content:  "{{memberName {{{apartmentNumber}}} {{}}",
			expected: []string{"apartmentNumber"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vars := ExtractVariables(tt.content)
			require.NotNil(t, vars)

			names := make([]string, 0, len(vars))
			for _, v := range vars {
				names = append(names, v.Name)
				assert.True(t, v.Required)
			}

			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestExtractVariables_LabelsAndTypes(t *testing.T) {
	t.Parallel()

	vars := ExtractVariables("{{arrearAmount}} {{somethingCustom}}")
	require.Len(t, vars, 2)

	assert.Equal(t, "Amount owed", vars[0].Label)
	assert.Equal(t, constant.VariableTypeCurrency, vars[0].Type)
	assert.Equal(t, "somethingCustom", vars[1].Label)
	assert.Equal(t, constant.VariableTypeText, vars[1].Type)
}

func TestIsValidName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidName("memberName"))
	assert.True(t, IsValidName("total_2024"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("member name"))
	assert.False(t, IsValidName("{{memberName}}"))
	assert.False(t, IsValidName("member-name"))
}
