// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pongo

import (
	"html"
	"strings"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/flosch/pongo2/v6"
)

var doctypeLabels = map[string]string{
	constant.DocumentTypeArrearsLetter:    "Arrears Letter",
	constant.DocumentTypeQuotaCertificate: "Quota Certificate",
	constant.DocumentTypeReceipt:          "Receipt",
	constant.DocumentTypeMinutesPDF:       "Assembly Minutes",
	constant.DocumentTypeAssemblyNotice:   "Assembly Notice",
	constant.DocumentTypeFinancialReport:  "Financial Report",
}

// doctypeLabelFilter turns a document type code into its printed heading.
// Unknown codes are title-cased word by word.
func doctypeLabelFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	code := in.String()

	if label, ok := doctypeLabels[code]; ok {
		return pongo2.AsValue(label), nil
	}

	words := strings.FieldsFunc(code, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return pongo2.AsValue(strings.Join(words, " ")), nil
}

// paragraphsFilter prints document content. HTML content passes through untouched;
// plain text is escaped and split into paragraphs on blank lines, with single
// newlines kept as line breaks.
func paragraphsFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	content := strings.ReplaceAll(in.String(), "\r\n", "\n")

	if looksLikeHTML(content) {
		return pongo2.AsSafeValue(content), nil
	}

	var b strings.Builder

	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(block), "\n", "<br>"))
		b.WriteString("</p>\n")
	}

	return pongo2.AsSafeValue(b.String()), nil
}

func looksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)

	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}
