package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders money with two decimals and locale grouping.
// The zero value is not usable; build one with NewCurrencyFormatter.
type CurrencyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewCurrencyFormatter parses a BCP 47 locale such as "en-IN".
func NewCurrencyFormatter(locale, symbol string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}
	return &CurrencyFormatter{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// DefaultCurrency is India/INR.
func DefaultCurrency() *CurrencyFormatter {
	return &CurrencyFormatter{symbol: "₹", printer: message.NewPrinter(language.MustParse("en-IN"))}
}

func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
}
