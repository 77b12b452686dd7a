package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Bill struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	BillNumber    string          `json:"bill_number" gorm:"unique;not null;size:40"`
	CustomerID    string          `json:"customer_id" gorm:"not null;size:36;index"`
	CustomerName  string          `json:"customer_name" gorm:"not null;size:255"`
	Items         []BillItem      `json:"items" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Tax           decimal.Decimal `json:"tax" gorm:"type:decimal(12,2);not null;default:0"`
	Discount      decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"not null;size:10"`
	Status        BillStatus      `json:"status" gorm:"not null;size:12;index;default:'pending'"`
	CreatedBy     string          `json:"created_by" gorm:"not null;size:36"`
	ApprovedBy    *string         `json:"approved_by" gorm:"size:36"`
	ApprovedAt    *time.Time      `json:"approved_at"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type BillStatus string

const (
	BillPending  BillStatus = "pending"
	BillApproved BillStatus = "approved"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
	PaymentBoth   PaymentMethod = "both"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentOnline, PaymentBoth:
		return true
	}
	return false
}
