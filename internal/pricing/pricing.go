// Package pricing computes document totals. The arithmetic is done in
// decimals so percentage discounts and tax do not accumulate float drift;
// callers convert at the model boundary.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/kirim-labs/invoice-service/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Totals is the result of one calculation pass.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Calculate derives the totals for a set of line items and pricing
// parameters:
//
//	subtotal       = sum(quantity * price)
//	discountAmount = percentage ? subtotal * discount/100 : discount
//	taxAmount      = taxEnabled ? (subtotal - discountAmount) * taxRate/100 : 0
//	total          = subtotal - discountAmount + taxAmount + additionalFee
//
// It is a pure, total function: inputs are not validated, negative values
// propagate into the result. It is meant to be re-run after every field
// change rather than maintained incrementally.
func Calculate(items []models.LineItem, discount float64, discountType models.DiscountType, taxEnabled bool, taxRate, additionalFee float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Price))
		subtotal = subtotal.Add(line)
	}

	discountAmount := decimal.NewFromFloat(discount)
	if discountType == models.DiscountTypePercentage {
		discountAmount = subtotal.Mul(decimal.NewFromFloat(discount)).Div(hundred)
	}

	afterDiscount := subtotal.Sub(discountAmount)

	taxAmount := decimal.Zero
	if taxEnabled {
		taxAmount = afterDiscount.Mul(decimal.NewFromFloat(taxRate)).Div(hundred)
	}

	total := afterDiscount.Add(taxAmount).Add(decimal.NewFromFloat(additionalFee))

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// Apply recomputes doc's derived fields in place from its current items
// and pricing parameters.
func Apply(doc *models.Document) {
	totals := Calculate(doc.Items, doc.Discount, doc.DiscountType, doc.TaxEnabled, doc.TaxRate, doc.AdditionalFee)
	doc.Subtotal = totals.Subtotal.InexactFloat64()
	doc.Total = totals.Total.InexactFloat64()
}
