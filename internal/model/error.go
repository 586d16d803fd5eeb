package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for domain errors
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewProductNotFoundError reports that no product row has the given id.
// The id is kept as a string so unparsable path segments read the same way.
func NewProductNotFoundError(id string) *DomainError {
	return NewDomainError(ErrCodeProductNotFound, fmt.Sprintf("Product with id %s does not exist", id))
}

// IsNotFound reports whether err is, or wraps, a product not-found error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrCodeProductNotFound
}
