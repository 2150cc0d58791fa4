package errors

import (
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field
const (
	CodeInvalidRequest     = "InvalidRequest"
	CodeValidationError    = "ValidationError"
	CodeItemNotFound       = "ItemNotFound"
	CodeLocationNotFound   = "LocationNotFound"
	CodeLocationInUse      = "LocationInUse"
	CodeInvalidQuantity    = "InvalidQuantity"
	CodeRecipeServiceError = "RecipeServiceError"
	CodeServiceUnavailable = "ServiceUnavailable"
	CodeExportError        = "ExportError"
	CodeInternalError      = "InternalError"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string `json:"error"`             // Error code, e.g. "ItemNotFound"
	Message string `json:"message"`           // Human-readable message
	Details string `json:"details,omitempty"` // Field name, ids or cause
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidationError, CodeInvalidQuantity:
		return http.StatusBadRequest
	case CodeItemNotFound, CodeLocationNotFound:
		return http.StatusNotFound
	case CodeLocationInUse:
		return http.StatusConflict
	case CodeRecipeServiceError:
		return http.StatusBadGateway
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(code, message, details string) *StandardError {
	return &StandardError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(message, field string) *StandardError {
	return NewStandardError(CodeValidationError, message, fmt.Sprintf("Field: %s", field))
}

func NewItemNotFound(itemID int64) *StandardError {
	return NewStandardError(CodeItemNotFound, "item not found", fmt.Sprintf("Item ID: %d", itemID))
}

func NewLocationNotFound(locationID int64) *StandardError {
	return NewStandardError(CodeLocationNotFound, "location not found", fmt.Sprintf("Location ID: %d", locationID))
}

func NewLocationInUse(locationID int64) *StandardError {
	return NewStandardError(CodeLocationInUse, "location is still referenced by items",
		fmt.Sprintf("Location ID: %d", locationID))
}

func NewInvalidQuantity(quantity int) *StandardError {
	return NewStandardError(CodeInvalidQuantity, "quantity cannot be negative", fmt.Sprintf("Quantity: %d", quantity))
}

// NewRecipeServiceError carries the fixed user-facing message; the cause is logged, not returned
func NewRecipeServiceError(message string) *StandardError {
	return NewStandardError(CodeRecipeServiceError, message, "")
}

func NewServiceUnavailable(message string) *StandardError {
	return NewStandardError(CodeServiceUnavailable, message, "")
}

func NewExportError(format string, err error) *StandardError {
	return NewStandardError(CodeExportError, fmt.Sprintf("failed to export %s", format), err.Error())
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeInternalError, message, details)
}
