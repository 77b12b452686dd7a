package services

import (
	"errors"
	"time"
)

var (
	ErrForbidden            = errors.New("not enough permissions")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrInactiveUser         = errors.New("user account is disabled")
	ErrAdminExists          = errors.New("admin user already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAssistantUnavailable = errors.New("assistant is unavailable")
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time
