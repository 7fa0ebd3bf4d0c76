package checkout

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means no payment provider is available; it is not a failure.
var ErrNotConfigured = errors.New("checkout bridge not configured")

// ErrBridgeFailure matches every *CheckoutError via errors.Is.
var ErrBridgeFailure = errors.New("checkout bridge failure")

type CheckoutError struct {
	Code    string
	Message string
	Err     error
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

func (e *CheckoutError) Is(target error) bool { return target == ErrBridgeFailure }

func NewCheckoutError(code, msg string, err error) error {
	return &CheckoutError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}
