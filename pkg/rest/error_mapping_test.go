package rest_test

import (
	"net/http"
	"testing"

	"identity-market/pkg/reasoncodes"
	"identity-market/pkg/rest"
)

func TestStatusForReason(t *testing.T) {
	tests := []struct {
		code     reasoncodes.ReasonCode
		expected int
	}{
		{reasoncodes.ErrInvalidInput, http.StatusBadRequest},
		{reasoncodes.ErrNotFound, http.StatusNotFound},
		{reasoncodes.ErrUnauthorized, http.StatusForbidden},
		{reasoncodes.ErrRateLimited, http.StatusTooManyRequests},
		{reasoncodes.ErrAlreadyExists, http.StatusConflict},
		{reasoncodes.ErrAlreadyListed, http.StatusConflict},
		{reasoncodes.ErrNotListed, http.StatusConflict},
		{reasoncodes.ErrSelfTrade, http.StatusConflict},
		{reasoncodes.ErrPriceMismatch, http.StatusConflict},
		{reasoncodes.ErrPayment, http.StatusBadGateway},
		{reasoncodes.ReasonCode("SomethingElse"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := rest.StatusForReason(tt.code); got != tt.expected {
				t.Errorf("Expected status %d for %s, got %d", tt.expected, tt.code, got)
			}
		})
	}
}
