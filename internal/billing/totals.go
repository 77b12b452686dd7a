// Package billing computes bill and quotation totals and holds the document
// lifecycle rules shared by bills and quotations.
package billing

import (
	"nursery_manager/internal/models"

	"github.com/shopspring/decimal"
)

// Totals is the derived money summary of a document.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal recomputes every line from quantity and unit price; stored
// total_price values are never trusted.
func Subtotal(items []models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	return sum
}

// Total is subtotal + tax - discount. A negative result is returned as is.
func Total(items []models.LineItem, tax, discount decimal.Decimal) decimal.Decimal {
	return Subtotal(items).Add(tax).Sub(discount)
}

func Compute(items []models.LineItem, tax, discount decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		Discount:    discount,
		TotalAmount: subtotal.Add(tax).Sub(discount),
	}
}
