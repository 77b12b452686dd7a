package billing

import (
	"fmt"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"
)

// InitialBillStatus decides where a new bill starts. Cashier bills wait for an
// admin; everyone else's are approved on creation.
func InitialBillStatus(role auth.Role) models.BillStatus {
	if role == auth.Cashier {
		return models.BillPending
	}
	return models.BillApproved
}

// ApproveBill is the only bill transition: pending -> approved.
func ApproveBill(current models.BillStatus) (models.BillStatus, error) {
	switch current {
	case models.BillPending:
		return models.BillApproved, nil
	case models.BillApproved:
		return current, ErrAlreadyApproved
	}
	return current, fmt.Errorf("unknown bill status %q", current)
}

func ParsePaymentMethod(s string) (models.PaymentMethod, error) {
	m := models.PaymentMethod(s)
	if s == "" {
		m = models.PaymentCash
	}
	if !m.Valid() {
		return "", invalid(ErrInvalidPaymentMethod, "got %q", s)
	}
	return m, nil
}

// DocumentNumber renders bill and quotation numbers, e.g. SKN-000042.
func DocumentNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}
