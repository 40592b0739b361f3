package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrInvalidLoanAmount    = errors.New("invalid loan amount")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrBootstrapUnavailable = errors.New("bootstrap unavailable")
	ErrAlreadyResolved      = errors.New("startup state already resolved")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeLoanNotFound         = "LOAN_NOT_FOUND"
	ErrCodeInvalidLoanAmount    = "INVALID_LOAN_AMOUNT"
	ErrCodeInvalidPaymentAmount = "INVALID_PAYMENT_AMOUNT"
	ErrCodeBootstrapUnavailable = "BOOTSTRAP_UNAVAILABLE"
	ErrCodeStorageError         = "STORAGE_ERROR"
	ErrCodeCacheError           = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapLoanNotFound(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotFound,
		fmt.Sprintf("Loan with ID %s not found", id),
		ErrLoanNotFound,
	)
}

func WrapInvalidPaymentAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPaymentAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount),
		ErrInvalidPaymentAmount,
	)
}

func WrapInvalidLoanAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidLoanAmount,
		fmt.Sprintf("Invalid loan amount: %s", amount),
		ErrInvalidLoanAmount,
	)
}

func WrapStorageError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeStorageError,
		"storage operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}

// WrapBootstrapUnavailable collapses any transport, status, or decoding
// failure into the single bootstrap-unavailable outcome, keeping the cause.
func WrapBootstrapUnavailable(err error) *BusinessError {
	if err == nil {
		err = ErrBootstrapUnavailable
	} else if !errors.Is(err, ErrBootstrapUnavailable) {
		err = fmt.Errorf("%w: %v", ErrBootstrapUnavailable, err)
	}

	return NewBusinessError(
		ErrCodeBootstrapUnavailable,
		"bootstrap request failed",
		err,
	)
}
