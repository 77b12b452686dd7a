package repository

import (
	"errors"

	"nursery_manager/internal/billing"

	"gorm.io/gorm"
)

// withNumberRetry reruns fn when a concurrent writer took the same document
// number. Each attempt must run in its own transaction.
func withNumberRetry(fn func() error) error {
	var err error
	for range maxDocumentNumberTry {
		err = fn()
		if !errors.Is(err, ErrConflict) {
			return err
		}
	}
	return err
}

// nextNumber derives the next document number from the row count of model.
func nextNumber(tx *gorm.DB, model interface{}, prefix string) (string, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return "", err
	}
	return billing.DocumentNumber(prefix, count+1), nil
}

func itemsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
