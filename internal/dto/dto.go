package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

var validate = validator.New()

// Validate checks struct tags and converts failures to a validation error
// rejected at the boundary.
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return apperr.Validationf("invalid request: %s", err.Error())
	}
	return nil
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	DB            string `json:"db"`
}
