package handlers

import (
	"errors"
	"log"
	"net/http"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/repository"
	"nursery_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case billing.IsValidation(err), errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrInactiveUser):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, billing.ErrAlreadyApproved),
		errors.Is(err, billing.ErrQuotationNotActive),
		errors.Is(err, billing.ErrQuotationExpired),
		errors.Is(err, repository.ErrConflict),
		errors.Is(err, services.ErrAdminExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrAssistantUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
		detail = "Internal server error"
	}
	c.JSON(status, gin.H{"detail": detail})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request format: " + err.Error()})
}
