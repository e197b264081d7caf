// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package templating

import (
	"github.com/LerianStudio/condo-docs/pkg/model"
)

// ValidateAgainstRegistry compares the placeholders of content with the registry entry
// of documentType. The result is advisory: callers report it, they do not reject the
// template because of it. The only error is an unknown document type.
func ValidateAgainstRegistry(documentType, content string) (model.TemplateWarnings, error) {
	def, err := GetDefinition(documentType)
	if err != nil {
		return model.TemplateWarnings{}, err
	}

	known := make(map[string]struct{}, len(def.RequiredVariables)+len(def.OptionalVariables))
	for _, name := range def.RequiredVariables {
		known[name] = struct{}{}
	}

	for _, name := range def.OptionalVariables {
		known[name] = struct{}{}
	}

	warnings := model.TemplateWarnings{
		UnknownVariables: []string{},
		MissingRequired:  []string{},
	}

	names := PlaceholderNames(content)
	referenced := make(map[string]struct{}, len(names))

	for _, name := range names {
		referenced[name] = struct{}{}

		if _, ok := known[name]; !ok {
			warnings.UnknownVariables = append(warnings.UnknownVariables, name)
		}
	}

	for _, name := range def.RequiredVariables {
		if _, ok := referenced[name]; !ok {
			warnings.MissingRequired = append(warnings.MissingRequired, name)
		}
	}

	return warnings, nil
}
