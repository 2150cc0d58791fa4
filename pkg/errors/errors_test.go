package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardError_HTTPStatus(t *testing.T) {
	testCases := []struct {
		err      *StandardError
		expected int
	}{
		{NewInvalidRequest("bad", ""), http.StatusBadRequest},
		{NewValidationError("required", "name"), http.StatusBadRequest},
		{NewInvalidQuantity(-1), http.StatusBadRequest},
		{NewItemNotFound(3), http.StatusNotFound},
		{NewLocationNotFound(9), http.StatusNotFound},
		{NewLocationInUse(2), http.StatusConflict},
		{NewRecipeServiceError("no"), http.StatusBadGateway},
		{NewServiceUnavailable("off"), http.StatusServiceUnavailable},
		{NewExportError("xlsx", errors.New("disk")), http.StatusInternalServerError},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Code, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.HTTPStatus())
		})
	}
}

func TestStandardError_Details(t *testing.T) {
	err := NewItemNotFound(42)

	assert.Equal(t, "item not found", err.Error())
	assert.Equal(t, "Item ID: 42", err.Details)
	assert.Equal(t, "Field: name", NewValidationError("required", "name").Details)
	assert.Empty(t, NewInternalError("boom", nil).Details)
}
