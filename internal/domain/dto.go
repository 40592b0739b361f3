package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs for requests and responses

type CreateLoanRequest struct {
	Name         string          `json:"name" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"dgt"`
	InterestRate decimal.Decimal `json:"interestRate" validate:"dgte"`
	StartDate    time.Time       `json:"startDate" validate:"required"`
	EndDate      time.Time       `json:"endDate" validate:"required"`
	Type         string          `json:"type" validate:"required,loantype"`
}

type UpdateLoanRequest struct {
	Name            string          `json:"name" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"dgt"`
	InterestRate    decimal.Decimal `json:"interestRate" validate:"dgte"`
	StartDate       time.Time       `json:"startDate" validate:"required"`
	EndDate         time.Time       `json:"endDate" validate:"required"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" validate:"dgte"`
	Type            string          `json:"type" validate:"required,loantype"`
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"dgt"`
}

// LoanResponse is a loan snapshot with its derived fields evaluated at a
// single instant.
type LoanResponse struct {
	Loan
	DerivedStatus    string          `json:"derivedStatus"`
	MonthsRemaining  int             `json:"monthsRemaining"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	ProgressFraction decimal.Decimal `json:"progressFraction"`
}

// NewLoanResponse evaluates the derived fields of a loan at the given instant.
func NewLoanResponse(loan Loan, now time.Time) LoanResponse {
	return LoanResponse{
		Loan:             loan,
		DerivedStatus:    loan.StatusAt(now),
		MonthsRemaining:  loan.MonthsRemaining(now),
		MonthlyPayment:   loan.MonthlyPaymentAt(now),
		ProgressFraction: loan.ProgressFraction(),
	}
}

// Summary aggregates the collection at a single instant. Totals cover loans
// whose derived status is active.
type Summary struct {
	TotalOutstanding    decimal.Decimal `json:"totalOutstanding"`
	TotalMonthlyPayment decimal.Decimal `json:"totalMonthlyPayment"`
	ActiveCount         int             `json:"activeCount"`
	PaidCount           int             `json:"paidCount"`
}

type StateResponse struct {
	State          string `json:"state"`
	Destination    string `json:"destination,omitempty"`
	ReviewEligible bool   `json:"reviewEligible"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
