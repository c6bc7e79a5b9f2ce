// Package pricing computes order totals. The same function totals a guest
// cart for display and an order at persistence time, so both always agree.
package pricing

import (
	"qrdine/apperr"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the 8% rate applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.08")

const currencyPlaces = 2

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// LineTotal is unitPrice × quantity, unrounded. Prices carry at most two
// decimals so the product is already exact in cents.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateOrderTotals sums lines, applies taxRate and rounds each figure to
// cents (half away from zero). An empty list yields zero totals.
func CalculateOrderTotals(lines []Line, taxRate decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() {
		return Totals{}, apperr.Validation("tax rate must not be negative")
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.UnitPrice.IsNegative() {
			return Totals{}, apperr.Validation("unit price must not be negative")
		}
		if line.Quantity <= 0 {
			return Totals{}, apperr.Validation("quantity must be positive")
		}
		subtotal = subtotal.Add(LineTotal(line.UnitPrice, line.Quantity))
	}

	subtotal = subtotal.Round(currencyPlaces)
	tax := subtotal.Mul(taxRate).Round(currencyPlaces)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(currencyPlaces),
	}, nil
}

// Calculator binds a configured tax rate.
type Calculator struct {
	TaxRate decimal.Decimal
}

func NewCalculator(taxRate decimal.Decimal) Calculator {
	return Calculator{TaxRate: taxRate}
}

func (c Calculator) Totals(lines []Line) (Totals, error) {
	return CalculateOrderTotals(lines, c.TaxRate)
}

// ValidPrice reports whether p is a non-negative amount with at most two decimals.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Equal(p.Round(currencyPlaces))
}
