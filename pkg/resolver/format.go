// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"
	"github.com/shopspring/decimal"
)

const currencyDecimals = 2

var translators = map[string]func() locales.Translator{
	"en":    en.New,
	"pt":    pt_PT.New,
	"pt_PT": pt_PT.New,
	"pt-PT": pt_PT.New,
	"pt_BR": pt_BR.New,
	"pt-BR": pt_BR.New,
}

// currencySymbols maps ISO codes to the symbol printed on documents. The
// translators only know ISO codes for currencies foreign to their locale.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"BRL": "R$",
	"CHF": "CHF",
}

type symbolPlacement struct {
	suffix    bool
	separator string
}

// placements holds the CLDR symbol position of locales that differ from "€120.00".
var placements = map[string]symbolPlacement{
	"pt_PT": {suffix: true, separator: "\u00a0"},
	"pt_BR": {separator: "\u00a0"},
}

// Formatter renders dates, money and counts for one locale.
type Formatter struct {
	translator locales.Translator
}

// NewFormatter returns a formatter for locale. Unknown locales fall back to English.
func NewFormatter(locale string) *Formatter {
	factory, ok := translators[locale]
	if !ok {
		factory = en.New
	}

	return &Formatter{translator: factory()}
}

// Locale returns the CLDR locale name in use.
func (f *Formatter) Locale() string {
	return f.translator.Locale()
}

// Date formats t as a long localized date, e.g. "January 10, 2024". The zero time formats as "".
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return f.translator.FmtDateLong(t)
}

// Currency formats amount with the symbol of the ISO currency code, e.g. "€120.00".
// Unknown or empty codes are formatted as euros.
func (f *Formatter) Currency(amount decimal.Decimal, code string) string {
	symbol, ok := currencySymbols[strings.ToUpper(code)]
	if !ok {
		symbol = currencySymbols["EUR"]
	}

	rounded := amount.Round(currencyDecimals)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	number := f.translator.FmtNumber(rounded.InexactFloat64(), currencyDecimals)

	p := placements[f.translator.Locale()]
	if p.suffix {
		return sign + number + p.separator + symbol
	}

	return sign + symbol + p.separator + number
}

// Integer formats a count without decimals.
func (f *Formatter) Integer(n int) string {
	return f.translator.FmtNumber(float64(n), 0)
}
