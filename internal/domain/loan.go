package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barakhava1/CashoryLoanTracker/pkg/utils"
)

const (
	LoanStatusActive  = "Active"
	LoanStatusPaid    = "Paid Off"
	LoanStatusOverdue = "Overdue"
)

const (
	LoanTypePersonal = "Personal"
	LoanTypeMortgage = "Mortgage"
	LoanTypeAuto     = "Auto"
	LoanTypeStudent  = "Student"
	LoanTypeCredit   = "Credit Card"
	LoanTypeOther    = "Other"
)

// LoanTypes lists the accepted loan types. The type is informational only and
// never feeds a calculation.
var LoanTypes = []string{
	LoanTypePersonal,
	LoanTypeMortgage,
	LoanTypeAuto,
	LoanTypeStudent,
	LoanTypeCredit,
	LoanTypeOther,
}

// Loan represents a tracked loan. Status holds the persisted hint only; the
// effective status is always derived through StatusAt.
type Loan struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
}

// StatusAt derives the effective status from the stored hint and the clock.
// Paid is sticky: once the hint says paid, or the balance reaches zero, the
// loan stays paid regardless of the end date.
func (l *Loan) StatusAt(now time.Time) string {
	if l.Status == LoanStatusPaid || l.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		return LoanStatusPaid
	}
	if utils.IsDateOverdue(l.EndDate, now) && l.RemainingAmount.GreaterThan(decimal.Zero) {
		return LoanStatusOverdue
	}
	return LoanStatusActive
}

// MonthsRemaining counts whole calendar months from now to the end date,
// clamped to a minimum of 1 so it stays usable as a payment denominator.
// A loan past its end date still yields 1; this is a denominator, not
// time left.
func (l *Loan) MonthsRemaining(now time.Time) int {
	months := utils.MonthsBetween(now, l.EndDate)
	if months < 1 {
		return 1
	}
	return months
}

// MonthlyPaymentAt estimates the level monthly payment needed to retire the
// remaining balance over the remaining term.
func (l *Loan) MonthlyPaymentAt(now time.Time) decimal.Decimal {
	return MonthlyPayment(l.RemainingAmount, l.InterestRate, l.MonthsRemaining(now))
}

// ProgressFraction reports how much of the original principal has been paid
// down. A balance edited above the original amount yields a negative
// fraction; that is surfaced as-is.
func (l *Loan) ProgressFraction() decimal.Decimal {
	if l.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Sub(l.RemainingAmount.Div(l.Amount))
}

// MarkPaid zeroes the balance and pins the status hint to paid.
func (l *Loan) MarkPaid() {
	l.Status = LoanStatusPaid
	l.RemainingAmount = decimal.Zero
}

// MonthlyPayment computes the fixed payment for a balance over a term.
// Interest-free balances split straight-line; otherwise the standard annuity
// formula applies with monthly rate r = annual% / 100 / 12:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
func MonthlyPayment(remaining decimal.Decimal, annualRatePercent decimal.Decimal, months int) decimal.Decimal {
	if remaining.LessThanOrEqual(decimal.Zero) || months <= 0 {
		return decimal.Zero
	}

	if annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return remaining.Div(decimal.NewFromInt(int64(months))).Round(2)
	}

	// The power term needs float math; the result goes back to decimal
	// for currency rounding.
	r := annualRatePercent.InexactFloat64() / 100 / 12
	factor := math.Pow(1+r, float64(months))
	payment := remaining.InexactFloat64() * r * factor / (factor - 1)

	return decimal.NewFromFloat(payment).Round(2)
}
