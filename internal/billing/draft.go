package billing

import (
	"strings"

	"nursery_manager/internal/models"

	"github.com/shopspring/decimal"
)

// Draft is an unsaved bill or quotation. Every mutation either succeeds
// completely or leaves the draft untouched.
type Draft struct {
	Items    []models.LineItem
	Tax      decimal.Decimal
	Discount decimal.Decimal
}

// ItemFromPlant prefills a line from the plant record. Name and price stay
// editable until the line is added.
func ItemFromPlant(p *models.Plant, quantity int) models.LineItem {
	return models.LineItem{
		PlantID:   p.ID,
		PlantName: p.Name,
		Quantity:  quantity,
		UnitPrice: p.SellingPrice,
	}
}

func ValidateItem(it models.LineItem) error {
	if strings.TrimSpace(it.PlantID) == "" {
		return ErrPlantRequired
	}
	if it.Quantity < 1 {
		return invalid(ErrInvalidQuantity, "got %d for %s", it.Quantity, it.PlantID)
	}
	if it.UnitPrice.IsNegative() {
		return invalid(ErrInvalidUnitPrice, "got %s for %s", it.UnitPrice.StringFixed(2), it.PlantID)
	}
	return nil
}

// AddItem validates the line, freezes its total and appends it.
func (d *Draft) AddItem(it models.LineItem) error {
	if err := ValidateItem(it); err != nil {
		return err
	}
	if it.Variant != nil && strings.TrimSpace(*it.Variant) == "" {
		it.Variant = nil
	}
	it.TotalPrice = LineTotal(it.Quantity, it.UnitPrice)
	d.Items = append(d.Items, it)
	return nil
}

// RemoveItem drops the line at index; the other lines keep their order.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return invalid(ErrItemIndex, "index %d, %d items", index, len(d.Items))
	}
	items := make([]models.LineItem, 0, len(d.Items)-1)
	items = append(items, d.Items[:index]...)
	items = append(items, d.Items[index+1:]...)
	d.Items = items
	return nil
}

func (d *Draft) SetAdjustments(tax, discount decimal.Decimal) error {
	if tax.IsNegative() || discount.IsNegative() {
		return invalid(ErrNegativeAmount, "tax %s, discount %s", tax.StringFixed(2), discount.StringFixed(2))
	}
	d.Tax = tax
	d.Discount = discount
	return nil
}

func (d *Draft) Totals() Totals {
	return Compute(d.Items, d.Tax, d.Discount)
}

// Validate is the submit-time check shared by bills and quotations.
func (d *Draft) Validate() error {
	if len(d.Items) == 0 {
		return ErrNoItems
	}
	if d.Tax.IsNegative() || d.Discount.IsNegative() {
		return ErrNegativeAmount
	}
	for _, it := range d.Items {
		if err := ValidateItem(it); err != nil {
			return err
		}
	}
	return nil
}
