package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Quotation struct {
	ID              string          `json:"id" gorm:"primaryKey;size:36"`
	QuotationNumber string          `json:"quotation_number" gorm:"unique;not null;size:40"`
	CustomerID      string          `json:"customer_id" gorm:"not null;size:36;index"`
	CustomerName    string          `json:"customer_name" gorm:"not null;size:255"`
	Items           []QuotationItem `json:"items" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Tax             decimal.Decimal `json:"tax" gorm:"type:decimal(12,2);not null;default:0"`
	Discount        decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	ValidDays       int             `json:"valid_days" gorm:"not null"`
	ValidUntil      time.Time       `json:"valid_until" gorm:"not null"`
	Status          QuotationStatus `json:"status" gorm:"not null;size:12;default:'active'"`
	ConvertedBillID *string         `json:"converted_bill_id" gorm:"size:36"`
	CreatedBy       string          `json:"created_by" gorm:"not null;size:36"`
	CreatedAt       time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Computed at read time from status and valid_until.
	DisplayStatus string `json:"display_status" gorm:"-"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

type QuotationStatus string

const (
	QuotationActive    QuotationStatus = "active"
	QuotationConverted QuotationStatus = "converted"
)
