package billing

import (
	"time"

	"nursery_manager/internal/models"
)

const DefaultValidDays = 30

const DisplayExpired = "expired"

func ValidateValidDays(days int) error {
	if days < 1 {
		return invalid(ErrInvalidValidity, "got %d", days)
	}
	return nil
}

func ValidUntil(createdAt time.Time, validDays int) time.Time {
	return createdAt.AddDate(0, 0, validDays)
}

// IsExpired is strict: at exactly valid_until the quotation is still valid.
func IsExpired(validUntil, now time.Time) bool {
	return now.After(validUntil)
}

// DisplayStatus is derived at read time and never stored.
func DisplayStatus(status models.QuotationStatus, validUntil, now time.Time) string {
	if status == models.QuotationActive && IsExpired(validUntil, now) {
		return DisplayExpired
	}
	return string(status)
}

// CheckConvertible allows conversion only for active, unexpired quotations.
func CheckConvertible(q *models.Quotation, now time.Time) error {
	if q.Status != models.QuotationActive {
		return ErrQuotationNotActive
	}
	if IsExpired(q.ValidUntil, now) {
		return ErrQuotationExpired
	}
	return nil
}
