// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Currency(t *testing.T) {
	t.Parallel()

	f := NewFormatter("en")

	assert.Equal(t, "€120.00", f.Currency(decimal.RequireFromString("120"), "EUR"))
	assert.Equal(t, "€0.00", f.Currency(decimal.Zero, ""))
	assert.Equal(t, "€0.01", f.Currency(decimal.RequireFromString("0.005"), "eur"))
	assert.Equal(t, "$15.25", f.Currency(decimal.RequireFromString("15.25"), "USD"))
	assert.Equal(t, "€1,234.50", f.Currency(decimal.RequireFromString("1234.5"), "EUR"))
	assert.Equal(t, "-€3.00", f.Currency(decimal.RequireFromString("-3"), "EUR"))
}

func TestFormatter_Currency_SymbolPlacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		code   string
		want   string
	}{
		{name: "english prefix", locale: "en", code: "EUR", want: "€120.00"},
		{name: "unknown locale uses english", locale: "xx", code: "GBP", want: "£120.00"},
		{name: "portugal suffix", locale: "pt", code: "EUR", want: "120,00\u00a0€"},
		{name: "brazil prefix", locale: "pt_BR", code: "BRL", want: "R$\u00a0120,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewFormatter(tt.locale).Currency(decimal.RequireFromString("120"), tt.code)

			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, tt.code+"1")
		})
	}
}

func TestFormatter_Date(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "January 10, 2024", NewFormatter("en").Date(day))
	assert.Equal(t, "", NewFormatter("en").Date(time.Time{}))
	assert.Contains(t, NewFormatter("pt_PT").Date(day), "janeiro")
}

func TestNewFormatter_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", NewFormatter("xx").Locale())
	assert.Equal(t, "pt_PT", NewFormatter("pt").Locale())
}

func TestFormatter_Integer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", NewFormatter("en").Integer(0))
	assert.Equal(t, "12", NewFormatter("en").Integer(12))
}
