package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

func TestInMemoryStore_SessionValues(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySettingsStore()

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetAccessToken(ctx, "tok123"))
	require.NoError(t, store.SetRemoteLink(ctx, "https://example.com"))

	token, err = store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, store.ClearSession(ctx))

	token, err = store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	link, err := store.RemoteLink(ctx)
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestInMemoryStore_ThemeFallsBackToSystem(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySettingsStore()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeSystem, theme)

	require.NoError(t, store.SetTheme(ctx, domain.ThemeDark))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestInMemoryStore_ReviewFlag(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySettingsStore()

	requested, err := store.HasRequestedReview(ctx)
	require.NoError(t, err)
	assert.False(t, requested)

	require.NoError(t, store.SetHasRequestedReview(ctx, true))
	requested, err = store.HasRequestedReview(ctx)
	require.NoError(t, err)
	assert.True(t, requested)
}

func TestInMemoryStore_LoansRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySettingsStore()

	empty, err := store.Loans(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	loans := []domain.Loan{
		{
			ID:              uuid.New(),
			Name:            "First",
			Amount:          decimal.NewFromInt(1000),
			InterestRate:    decimal.NewFromFloat(4.5),
			StartDate:       now.AddDate(-1, 0, 0),
			EndDate:         now.AddDate(1, 0, 0),
			RemainingAmount: decimal.NewFromInt(800),
			Type:            domain.LoanTypePersonal,
			Status:          domain.LoanStatusActive,
		},
		{
			ID:              uuid.New(),
			Name:            "Second",
			Amount:          decimal.NewFromInt(2000),
			InterestRate:    decimal.Zero,
			StartDate:       now.AddDate(-2, 0, 0),
			EndDate:         now.AddDate(0, -1, 0),
			RemainingAmount: decimal.Zero,
			Type:            domain.LoanTypeMortgage,
			Status:          domain.LoanStatusPaid,
		},
	}

	require.NoError(t, store.SaveLoans(ctx, loans))

	reloaded, err := store.Loans(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)

	for i := range loans {
		assert.Equal(t, loans[i].ID, reloaded[i].ID)
		assert.Equal(t, loans[i].Name, reloaded[i].Name)
		assert.True(t, loans[i].Amount.Equal(reloaded[i].Amount))
		assert.True(t, loans[i].InterestRate.Equal(reloaded[i].InterestRate))
		assert.True(t, loans[i].RemainingAmount.Equal(reloaded[i].RemainingAmount))
		assert.Equal(t, loans[i].Type, reloaded[i].Type)
		assert.Equal(t, loans[i].StatusAt(now), reloaded[i].StatusAt(now))
	}
}
