package models

import (
	"nursery_manager/internal/inventory"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Plant struct {
	ID                string          `json:"id" gorm:"primaryKey;size:36"`
	Name              string          `json:"name" gorm:"not null;size:255;index"`
	Category          string          `json:"category" gorm:"not null;size:100"`
	Variants          StringList      `json:"variants" gorm:"type:text"`
	CurrentStock      int             `json:"current_stock" gorm:"not null;default:0"`
	MinStockThreshold int             `json:"min_stock_threshold" gorm:"not null;default:10"`
	CostPrice         decimal.Decimal `json:"cost_price" gorm:"type:decimal(12,2);not null"`
	SellingPrice      decimal.Decimal `json:"selling_price" gorm:"type:decimal(12,2);not null"`
	Investment        decimal.Decimal `json:"investment" gorm:"type:decimal(12,2);not null"`
	Location          string          `json:"location" gorm:"size:255"`
	Description       *string         `json:"description" gorm:"type:text"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	StockStatus inventory.StockStatus `json:"stock_status" gorm:"-"`
}

func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AfterFind fills the derived stock badge; it is never stored.
func (p *Plant) AfterFind(tx *gorm.DB) error {
	p.Classify()
	return nil
}

func (p *Plant) Classify() inventory.StockStatus {
	p.StockStatus = inventory.Classify(p.CurrentStock, p.MinStockThreshold)
	return p.StockStatus
}
