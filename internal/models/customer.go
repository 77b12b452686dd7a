package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Name          string    `json:"name" gorm:"not null;size:255;index"`
	Phone         string    `json:"phone" gorm:"not null;size:20;index"`
	Email         *string   `json:"email" gorm:"size:255"`
	Address       *string   `json:"address" gorm:"type:text"`
	WhatsAppOptIn bool      `json:"whatsapp_opt_in" gorm:"column:whats_app_opt_in;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
