// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pongo

import (
	"fmt"

	"github.com/LerianStudio/condo-docs/pkg/model"

	"github.com/flosch/pongo2/v6"
)

// DefaultLayout is the A4 page every document is printed on.
const DefaultLayout = `<!DOCTYPE html>
<html lang="{{ locale }}">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>
  @page { size: A4; margin: 0; }
  body { font-family: "DejaVu Serif", Georgia, serif; font-size: 11pt; line-height: 1.5; color: #111; margin: 0; }
  header { border-bottom: 1px solid #999; padding-bottom: 8pt; margin-bottom: 18pt; }
  header .building { font-size: 13pt; font-weight: bold; }
  header .address { font-size: 9pt; color: #555; }
  header .doctype { float: right; font-size: 9pt; text-transform: uppercase; letter-spacing: 1pt; color: #555; }
  h1 { font-size: 15pt; margin: 0 0 14pt 0; }
  footer { border-top: 1px solid #ccc; margin-top: 28pt; padding-top: 6pt; font-size: 8pt; color: #777; }
</style>
</head>
<body>
<header>
  <span class="doctype">{{ document_type|doctype_label }}</span>
  <div class="building">{{ building_name }}</div>
  {% if building_address %}<div class="address">{{ building_address }}</div>{% endif %}
</header>
<h1>{{ title }}</h1>
<main>
{{ content|paragraphs }}
</main>
<footer>
  {% if member_name %}{{ member_name }}{% if apartment %}, apt. {{ apartment }}{% endif %} · {% endif %}{{ generated_at|date:"2006-01-02" }} · template v{{ template_version }} · {{ document_id }}
</footer>
</body>
</html>
`

// PrintLayout wraps document content in a printable HTML page.
type PrintLayout struct {
	tpl    *pongo2.Template
	locale string
}

// NewPrintLayout compiles layout, or DefaultLayout when layout is empty.
func NewPrintLayout(layout, locale string) (*PrintLayout, error) {
	if err := RegisterAll(); err != nil {
		return nil, err
	}

	if layout == "" {
		layout = DefaultLayout
	}

	if locale == "" {
		locale = "en"
	}

	tpl, err := pongo2.FromString(layout)
	if err != nil {
		return nil, fmt.Errorf("parse print layout: %w", err)
	}

	return &PrintLayout{tpl: tpl, locale: locale}, nil
}

// Wrap returns the full HTML page of doc.
func (l *PrintLayout) Wrap(doc *model.GeneratedDocument) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("wrap: nil document")
	}

	vars := doc.Metadata.Variables

	out, err := l.tpl.Execute(pongo2.Context{
		"locale":           l.locale,
		"title":            doc.Title,
		"content":          doc.Content,
		"document_type":    doc.Type,
		"document_id":      doc.ID.String(),
		"building_name":    vars["buildingName"],
		"building_address": vars["buildingAddress"],
		"member_name":      doc.Metadata.MemberName,
		"apartment":        vars["apartmentNumber"],
		"generated_at":     doc.Metadata.GeneratedAt,
		"template_version": doc.Metadata.TemplateVersion,
	})
	if err != nil {
		return "", fmt.Errorf("execute print layout: %w", err)
	}

	return out, nil
}
