package model

import "errors"

var (
	ErrIncorrectFee       = errors.New("spin fee must equal the spin cost")
	ErrNotOwner           = errors.New("spin belongs to another player")
	ErrAlreadyClaimed     = errors.New("prize already claimed")
	ErrNothingToClaim     = errors.New("spin has no prize")
	ErrDisbursementFailed = errors.New("prize disbursement failed")
	ErrInvalidPlayer      = errors.New("invalid player address")
	ErrSpinNotFound       = errors.New("spin not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrRateLimited        = errors.New("too many requests")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNonceNotFound      = errors.New("login nonce not found or expired")
)

const CodeInternal = "INTERNAL"

var codes = []struct {
	err  error
	code string
}{
	{ErrIncorrectFee, "INCORRECT_FEE"},
	{ErrNotOwner, "NOT_OWNER"},
	{ErrAlreadyClaimed, "ALREADY_CLAIMED"},
	{ErrNothingToClaim, "NOTHING_TO_CLAIM"},
	{ErrDisbursementFailed, "DISBURSEMENT_FAILED"},
	{ErrInvalidPlayer, "INVALID_PLAYER"},
	{ErrSpinNotFound, "SPIN_NOT_FOUND"},
	{ErrInsufficientFunds, "INSUFFICIENT_FUNDS"},
	{ErrInvalidAmount, "INVALID_AMOUNT"},
	{ErrUnauthorized, "UNAUTHORIZED"},
	{ErrSessionNotFound, "UNAUTHORIZED"},
	{ErrNonceNotFound, "UNAUTHORIZED"},
	{ErrForbidden, "FORBIDDEN"},
	{ErrRateLimited, "RATE_LIMITED"},
}

// ErrorCode стабильный код ошибки для клиента
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
