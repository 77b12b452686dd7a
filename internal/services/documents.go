package services

import (
	"fmt"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type ItemInput struct {
	PlantID   string           `json:"plant_id"`
	Variant   *string          `json:"variant"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// draftBuilder turns request items into a validated draft. Items are checked
// before any lookup; plant names always come from the plant record and the
// unit price falls back to the plant's selling price.
type draftBuilder struct {
	plants    repository.PlantRepository
	customers repository.CustomerRepository
}

func (b draftBuilder) build(customerID string, items []ItemInput, tax, discount decimal.Decimal) (*billing.Draft, *models.Customer, error) {
	if len(items) == 0 {
		return nil, nil, billing.ErrNoItems
	}
	draft := &billing.Draft{}
	if err := draft.SetAdjustments(tax, discount); err != nil {
		return nil, nil, err
	}
	for _, in := range items {
		probe := models.LineItem{PlantID: in.PlantID, Quantity: in.Quantity}
		if in.UnitPrice != nil {
			probe.UnitPrice = *in.UnitPrice
		}
		if err := billing.ValidateItem(probe); err != nil {
			return nil, nil, err
		}
	}

	customer, err := b.customers.GetByID(customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("customer %s: %w", customerID, err)
	}

	for _, in := range items {
		plant, err := b.plants.GetByID(in.PlantID)
		if err != nil {
			return nil, nil, fmt.Errorf("plant %s: %w", in.PlantID, err)
		}
		item := billing.ItemFromPlant(plant, in.Quantity)
		item.Variant = in.Variant
		if in.UnitPrice != nil {
			item.UnitPrice = *in.UnitPrice
		}
		if err := draft.AddItem(item); err != nil {
			return nil, nil, err
		}
	}
	if err := draft.Validate(); err != nil {
		return nil, nil, err
	}
	return draft, customer, nil
}
