package models

import (
	"github.com/shopspring/decimal"
)

// LineItem is frozen when it is added to a draft: the plant name and the unit
// price are copied, later plant edits do not touch it.
type LineItem struct {
	PlantID    string          `json:"plant_id" gorm:"not null;size:36;index"`
	PlantName  string          `json:"plant_name" gorm:"not null;size:255"`
	Variant    *string         `json:"variant" gorm:"size:100"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
}

type BillItem struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	BillID   string `json:"-" gorm:"not null;size:36;index"`
	Position int    `json:"-" gorm:"not null"`
	LineItem `gorm:"embedded"`
}

type QuotationItem struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	QuotationID string `json:"-" gorm:"not null;size:36;index"`
	Position    int    `json:"-" gorm:"not null"`
	LineItem    `gorm:"embedded"`
}

func ToBillItems(items []LineItem) []BillItem {
	out := make([]BillItem, len(items))
	for i, it := range items {
		out[i] = BillItem{Position: i, LineItem: it}
	}
	return out
}

func ToQuotationItems(items []LineItem) []QuotationItem {
	out := make([]QuotationItem, len(items))
	for i, it := range items {
		out[i] = QuotationItem{Position: i, LineItem: it}
	}
	return out
}

func (b *Bill) LineItems() []LineItem {
	out := make([]LineItem, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.LineItem
	}
	return out
}

func (q *Quotation) LineItems() []LineItem {
	out := make([]LineItem, len(q.Items))
	for i, it := range q.Items {
		out[i] = it.LineItem
	}
	return out
}
