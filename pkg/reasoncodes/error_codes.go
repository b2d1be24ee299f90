package reasoncodes

type ReasonCode string

const (
	ErrInvalidInput  ReasonCode = "InvalidInput"
	ErrNotFound      ReasonCode = "NotFound"
	ErrAlreadyExists ReasonCode = "AlreadyExists"
	ErrUnauthorized  ReasonCode = "Unauthorized"
	ErrRateLimited   ReasonCode = "RateLimited"
	ErrAlreadyListed ReasonCode = "AlreadyListed"
	ErrNotListed     ReasonCode = "NotListed"
	ErrSelfTrade     ReasonCode = "SelfTrade"
	ErrPriceMismatch ReasonCode = "PriceMismatch"
	ErrPayment       ReasonCode = "PaymentError"
	ErrUnmarshal     ReasonCode = "UnmarshalError"
)
