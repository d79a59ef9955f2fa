package domain

import "github.com/shopspring/decimal"

var vatRate = decimal.New(7, -2)

type Totals struct {
	TotalPrice decimal.Decimal
	Subtotal   decimal.Decimal
	VAT        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals sums active lines, applies the flat discount clamped at
// zero, then 7% VAT on the discounted subtotal.
func ComputeTotals(items []Item, discount float64) Totals {
	total := decimal.Zero
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
		total = total.Add(line)
	}

	subtotal := total.Sub(decimal.NewFromFloat(discount))
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}
	vat := subtotal.Mul(vatRate)

	return Totals{
		TotalPrice: total,
		Subtotal:   subtotal,
		VAT:        vat,
		GrandTotal: subtotal.Add(vat),
	}
}

// LineAmount is the stored per-line amount, active or not.
func LineAmount(item Item) float64 {
	return decimal.NewFromFloat(item.Quantity).
		Mul(decimal.NewFromFloat(item.UnitPrice)).
		InexactFloat64()
}
