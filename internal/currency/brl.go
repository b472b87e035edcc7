// Package currency formats amounts as Brazilian reais.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol prefixes every formatted amount
const Symbol = "R$"

var locale = language.BrazilianPortuguese

// FormatBRL renders v with two decimals, '.' grouping thousands and ','
// separating decimals, e.g. "R$ 2.200,00".
func FormatBRL(v float64) string {
	if v == 0 {
		// avoids "-0,00" for negative zero
		v = 0
	}
	p := message.NewPrinter(locale)
	return Symbol + " " + p.Sprintf("%.2f", v)
}

// Zero is the text shown when no value has been calculated
func Zero() string {
	return FormatBRL(0)
}
