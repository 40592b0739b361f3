package repository

import (
	"context"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

// SettingsStore defines the persistence collaborator: a small key-value store
// plus the ordered loan collection. The collection is always written whole;
// there is no incremental persistence.
type SettingsStore interface {
	// AccessToken retrieves the persisted bootstrap token, "" if absent
	AccessToken(ctx context.Context) (string, error)

	// SetAccessToken persists the bootstrap token
	SetAccessToken(ctx context.Context, token string) error

	// RemoteLink retrieves the persisted remote destination, "" if absent
	RemoteLink(ctx context.Context) (string, error)

	// SetRemoteLink persists the remote destination
	SetRemoteLink(ctx context.Context, link string) error

	// HasRequestedReview retrieves the one-time review-prompt flag
	HasRequestedReview(ctx context.Context) (bool, error)

	// SetHasRequestedReview persists the review-prompt flag
	SetHasRequestedReview(ctx context.Context, requested bool) error

	// Theme retrieves the selected theme, falling back to the system theme
	Theme(ctx context.Context) (string, error)

	// SetTheme persists the selected theme
	SetTheme(ctx context.Context, theme string) error

	// Loans retrieves the ordered loan collection
	Loans(ctx context.Context) ([]domain.Loan, error)

	// SaveLoans overwrites the whole loan collection, preserving order
	SaveLoans(ctx context.Context, loans []domain.Loan) error

	// ClearSession drops the bootstrap token and remote destination
	ClearSession(ctx context.Context) error
}
