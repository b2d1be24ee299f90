package rest

import (
	"net/http"

	"identity-market/pkg/reasoncodes"
)

// StatusForReason maps core reason codes onto HTTP statuses. Unknown
// codes fall through to 500.
func StatusForReason(code reasoncodes.ReasonCode) int {
	switch code {
	case reasoncodes.ErrInvalidInput:
		return http.StatusBadRequest
	case reasoncodes.ErrNotFound:
		return http.StatusNotFound
	case reasoncodes.ErrUnauthorized:
		return http.StatusForbidden
	case reasoncodes.ErrRateLimited:
		return http.StatusTooManyRequests
	case reasoncodes.ErrAlreadyExists,
		reasoncodes.ErrAlreadyListed,
		reasoncodes.ErrNotListed,
		reasoncodes.ErrSelfTrade,
		reasoncodes.ErrPriceMismatch:
		return http.StatusConflict
	case reasoncodes.ErrPayment:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
