package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

const DefaultSymbol = "$"

type Formatter struct {
	ac *accounting.Accounting
}

func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{
		ac: &accounting.Accounting{Symbol: symbol, Precision: 2, Thousand: ",", Decimal: "."},
	}
}

// Money rounds to cents for display only.
func (f *Formatter) Money(amount decimal.Decimal) string {
	return f.ac.FormatMoney(amount)
}

var usd = NewFormatter(DefaultSymbol)

func FormatUSD(amount decimal.Decimal) string {
	return usd.Money(amount)
}
