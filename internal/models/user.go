package models

import (
	"nursery_manager/internal/auth"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	Username     string         `json:"username" gorm:"unique;not null;size:100"`
	Email        string         `json:"email" gorm:"unique;not null;size:255"`
	FullName     string         `json:"full_name" gorm:"not null;size:255"`
	Role         auth.Role      `json:"role" gorm:"not null;size:20;default:'cashier'"` // admin, manager, cashier
	PasswordHash string         `json:"-" gorm:"not null"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
