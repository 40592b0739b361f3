package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func testLoan(remaining int64, endDate time.Time, status string) Loan {
	return Loan{
		ID:              uuid.New(),
		Name:            "Car loan",
		Amount:          decimal.NewFromInt(10000),
		InterestRate:    decimal.NewFromInt(5),
		StartDate:       testNow.AddDate(-1, 0, 0),
		EndDate:         endDate,
		RemainingAmount: decimal.NewFromInt(remaining),
		Type:            LoanTypeAuto,
		Status:          status,
	}
}

func TestStatusAt(t *testing.T) {
	future := testNow.AddDate(1, 0, 0)
	past := testNow.AddDate(0, -1, 0)

	tests := []struct {
		name string
		loan Loan
		want string
	}{
		{"active with balance and future end", testLoan(5000, future, LoanStatusActive), LoanStatusActive},
		{"zero balance is paid", testLoan(0, future, LoanStatusActive), LoanStatusPaid},
		{"zero balance is paid even when overdue", testLoan(0, past, LoanStatusActive), LoanStatusPaid},
		{"paid hint wins over balance", testLoan(5000, future, LoanStatusPaid), LoanStatusPaid},
		{"paid hint wins over overdue", testLoan(5000, past, LoanStatusPaid), LoanStatusPaid},
		{"past end with balance is overdue", testLoan(5000, past, LoanStatusActive), LoanStatusOverdue},
		{"overdue hint alone does not force overdue", testLoan(5000, future, LoanStatusOverdue), LoanStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loan.StatusAt(testNow))
		})
	}
}

func TestStatusAt_NegativeBalanceIsPaid(t *testing.T) {
	loan := testLoan(0, testNow.AddDate(0, -1, 0), LoanStatusActive)
	loan.RemainingAmount = decimal.NewFromInt(-1)
	assert.Equal(t, LoanStatusPaid, loan.StatusAt(testNow))
}

func TestMonthsRemaining(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"one year out", testNow.AddDate(1, 0, 0), 12},
		{"six months out", testNow.AddDate(0, 6, 0), 6},
		{"under a month clamps to one", testNow.AddDate(0, 0, 10), 1},
		{"past end date still one", testNow.AddDate(0, -6, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := testLoan(5000, tt.end, LoanStatusActive)
			assert.Equal(t, tt.want, loan.MonthsRemaining(testNow))
		})
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	got := MonthlyPayment(decimal.NewFromInt(1200), decimal.Zero, 12)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)
}

func TestMonthlyPayment_Annuity(t *testing.T) {
	// 10000 at 12% annual over 12 months: monthly rate 0.01.
	got := MonthlyPayment(decimal.NewFromInt(10000), decimal.NewFromInt(12), 12)
	assert.True(t, got.Equal(decimal.NewFromFloat(888.49)), "got %s", got)
}

func TestMonthlyPayment_Guards(t *testing.T) {
	assert.True(t, MonthlyPayment(decimal.Zero, decimal.NewFromInt(5), 12).IsZero())
	assert.True(t, MonthlyPayment(decimal.NewFromInt(-100), decimal.NewFromInt(5), 12).IsZero())
	assert.True(t, MonthlyPayment(decimal.NewFromInt(100), decimal.NewFromInt(5), 0).IsZero())
}

func TestProgressFraction(t *testing.T) {
	loan := testLoan(2500, testNow.AddDate(1, 0, 0), LoanStatusActive)
	assert.True(t, loan.ProgressFraction().Equal(decimal.NewFromFloat(0.75)))

	loan.RemainingAmount = decimal.NewFromInt(12000)
	assert.True(t, loan.ProgressFraction().IsNegative(), "edited balance above principal stays unclamped")

	loan.Amount = decimal.Zero
	assert.True(t, loan.ProgressFraction().IsZero())
}

func TestMarkPaid(t *testing.T) {
	loan := testLoan(5000, testNow.AddDate(0, -1, 0), LoanStatusActive)
	loan.MarkPaid()

	assert.True(t, loan.RemainingAmount.IsZero())
	assert.Equal(t, LoanStatusPaid, loan.Status)
	assert.Equal(t, LoanStatusPaid, loan.StatusAt(testNow))

	// Repeating is a no-op in effect.
	loan.MarkPaid()
	assert.True(t, loan.RemainingAmount.IsZero())
	assert.Equal(t, LoanStatusPaid, loan.StatusAt(testNow))
}

func TestLoanJSONRoundTrip(t *testing.T) {
	loan := testLoan(5000, testNow.AddDate(1, 0, 0), LoanStatusActive)

	data, err := json.Marshal(loan)
	require.NoError(t, err)

	var decoded Loan
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, loan.ID, decoded.ID)
	assert.Equal(t, loan.Name, decoded.Name)
	assert.True(t, loan.Amount.Equal(decoded.Amount))
	assert.True(t, loan.RemainingAmount.Equal(decoded.RemainingAmount))
	assert.True(t, loan.StartDate.Equal(decoded.StartDate))
	assert.True(t, loan.EndDate.Equal(decoded.EndDate))
	assert.Equal(t, loan.Type, decoded.Type)
	assert.Equal(t, loan.StatusAt(testNow), decoded.StatusAt(testNow))
}
