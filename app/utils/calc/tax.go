package calc

import "github.com/shopspring/decimal"

var defaultTaxRate = decimal.RequireFromString("0.0825")

func DefaultTaxRate() decimal.Decimal {
	return defaultTaxRate
}

// CalculateTax taxes the aggregate subtotal. Lines are never taxed individually.
func CalculateTax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

func CalculateGrandTotal(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount)
}
