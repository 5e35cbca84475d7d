package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(hundred)
}

// ApplyDiscount returns baseTotal reduced by discountPercent, which is clamped to [0, 100].
func ApplyDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Sub(CalculateDiscount(baseTotal, ClampPercent(discountPercent)))
}

func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
