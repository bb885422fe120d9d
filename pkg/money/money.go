package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea montos decimales en una moneda y un idioma fijos.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter construye el formateador; code es ISO 4217 (CNY, USD...) y lang una etiqueta BCP 47.
func NewFormatter(code, lang string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q inválida: %w", code, err)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("money: idioma %q inválido: %w", lang, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// Format devuelve el monto con el símbolo de la moneda, redondeado a la escala estándar de la moneda.
func (f *Formatter) Format(amount decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(f.unit)
	rounded := amount.Round(int32(scale))
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(rounded.InexactFloat64())))
}
