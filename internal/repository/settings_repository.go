package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

// Setting keys. The names match the original client payload so an exported
// settings blob stays readable.
const (
	keyAccessToken        = "access_token_key"
	keyRemoteLink         = "remote_link_key"
	keySelectedTheme      = "selected_theme_key"
	keySavedLoans         = "saved_loans_key"
	keyHasRequestedReview = "has_requested_review_key"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsStore {
	return &settingsRepository{db: db}
}

// EnsureSchema creates the settings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *settingsRepository) get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_settings WHERE key = $1`

	var value string
	err := r.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *settingsRepository) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now())
	return err
}

func (r *settingsRepository) AccessToken(ctx context.Context) (string, error) {
	return r.get(ctx, keyAccessToken)
}

func (r *settingsRepository) SetAccessToken(ctx context.Context, token string) error {
	return r.set(ctx, keyAccessToken, token)
}

func (r *settingsRepository) RemoteLink(ctx context.Context) (string, error) {
	return r.get(ctx, keyRemoteLink)
}

func (r *settingsRepository) SetRemoteLink(ctx context.Context, link string) error {
	return r.set(ctx, keyRemoteLink, link)
}

func (r *settingsRepository) HasRequestedReview(ctx context.Context) (bool, error) {
	value, err := r.get(ctx, keyHasRequestedReview)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (r *settingsRepository) SetHasRequestedReview(ctx context.Context, requested bool) error {
	value := "false"
	if requested {
		value = "true"
	}
	return r.set(ctx, keyHasRequestedReview, value)
}

func (r *settingsRepository) Theme(ctx context.Context) (string, error) {
	value, err := r.get(ctx, keySelectedTheme)
	if err != nil {
		return "", err
	}
	if !domain.ValidTheme(value) {
		return domain.ThemeSystem, nil
	}
	return value, nil
}

func (r *settingsRepository) SetTheme(ctx context.Context, theme string) error {
	return r.set(ctx, keySelectedTheme, theme)
}

func (r *settingsRepository) Loans(ctx context.Context) ([]domain.Loan, error) {
	value, err := r.get(ctx, keySavedLoans)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []domain.Loan{}, nil
	}

	var loans []domain.Loan
	if err := json.Unmarshal([]byte(value), &loans); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *settingsRepository) SaveLoans(ctx context.Context, loans []domain.Loan) error {
	if loans == nil {
		loans = []domain.Loan{}
	}

	data, err := json.Marshal(loans)
	if err != nil {
		return err
	}

	return r.set(ctx, keySavedLoans, string(data))
}

func (r *settingsRepository) ClearSession(ctx context.Context) error {
	query := `DELETE FROM app_settings WHERE key IN ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, keyAccessToken, keyRemoteLink)
	return err
}
