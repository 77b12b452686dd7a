package billing

import (
	"testing"
	"time"

	"nursery_manager/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsExpiredBoundary(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	validUntil := ValidUntil(created, 30)

	assert.False(t, IsExpired(validUntil, created.AddDate(0, 0, 29)))
	assert.False(t, IsExpired(validUntil, created.AddDate(0, 0, 30)), "exactly at valid_until is still valid")
	assert.True(t, IsExpired(validUntil, created.AddDate(0, 0, 30).Add(time.Nanosecond)))
	assert.True(t, IsExpired(validUntil, created.AddDate(0, 0, 31)))
}

func TestValidateValidDays(t *testing.T) {
	assert.NoError(t, ValidateValidDays(1))
	assert.NoError(t, ValidateValidDays(DefaultValidDays))
	assert.ErrorIs(t, ValidateValidDays(0), ErrInvalidValidity)
	assert.ErrorIs(t, ValidateValidDays(-7), ErrInvalidValidity)
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.Equal(t, "active", DisplayStatus(models.QuotationActive, future, now))
	assert.Equal(t, "expired", DisplayStatus(models.QuotationActive, past, now))
	assert.Equal(t, "converted", DisplayStatus(models.QuotationConverted, past, now))
	assert.Equal(t, "converted", DisplayStatus(models.QuotationConverted, future, now))
}

func TestCheckConvertible(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	active := &models.Quotation{Status: models.QuotationActive, ValidUntil: now.Add(time.Hour)}
	assert.NoError(t, CheckConvertible(active, now))

	expired := &models.Quotation{Status: models.QuotationActive, ValidUntil: now.Add(-time.Hour)}
	assert.ErrorIs(t, CheckConvertible(expired, now), ErrQuotationExpired)

	converted := &models.Quotation{Status: models.QuotationConverted, ValidUntil: now.Add(time.Hour)}
	assert.ErrorIs(t, CheckConvertible(converted, now), ErrQuotationNotActive)
}
