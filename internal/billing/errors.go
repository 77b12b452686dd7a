package billing

import (
	"errors"
	"fmt"
)

var (
	ErrNoItems              = errors.New("at least one item is required")
	ErrPlantRequired        = errors.New("plant must be selected")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidUnitPrice     = errors.New("unit price cannot be negative")
	ErrNegativeAmount       = errors.New("tax and discount cannot be negative")
	ErrItemIndex            = errors.New("item index out of range")
	ErrInvalidValidity      = errors.New("quotation validity must be at least 1 day")
	ErrInvalidPaymentMethod = errors.New("payment method must be cash, online or both")

	ErrAlreadyApproved    = errors.New("bill is already approved")
	ErrQuotationNotActive = errors.New("quotation is not active")
	ErrQuotationExpired   = errors.New("quotation has expired")
)

// ValidationError carries a sentinel plus a human readable detail.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error, format string, args ...interface{}) error {
	return &ValidationError{Err: err, Details: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err was produced by draft or document
// validation, i.e. a problem with the caller's input rather than the system.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, sentinel := range []error{
		ErrNoItems, ErrPlantRequired, ErrInvalidQuantity, ErrInvalidUnitPrice,
		ErrNegativeAmount, ErrItemIndex, ErrInvalidValidity, ErrInvalidPaymentMethod,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
