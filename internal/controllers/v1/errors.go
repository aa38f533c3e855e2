package v1

import (
	"errors"
	"net/http"

	"github.com/spendbase/backend/internal/auth"
	"github.com/spendbase/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errNoSession) || errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, models.ErrCredentialsInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errNoSession = errors.New("you must be logged in for this request")

	errEmailInvalid    = errors.New("a valid email address must be set")
	errPasswordTooWeak = errors.New("the password must be at least 6 characters long")
	errNameTooShort    = errors.New("the name must be at least 2 characters long")

	errCategoryIDParameter = errors.New("the categoryId field must be set")
	errNameNotSet          = errors.New("the name field must be set")
)
