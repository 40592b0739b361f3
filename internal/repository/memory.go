package repository

import (
	"context"
	"encoding/json"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

// InMemorySettingsStore is a SettingsStore backed by process memory. It backs
// tests and ephemeral runs; loans round-trip through JSON so encoding
// behavior matches the durable store.
type InMemorySettingsStore struct {
	values map[string]string
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{values: make(map[string]string)}
}

func (s *InMemorySettingsStore) AccessToken(ctx context.Context) (string, error) {
	return s.values[keyAccessToken], nil
}

func (s *InMemorySettingsStore) SetAccessToken(ctx context.Context, token string) error {
	s.values[keyAccessToken] = token
	return nil
}

func (s *InMemorySettingsStore) RemoteLink(ctx context.Context) (string, error) {
	return s.values[keyRemoteLink], nil
}

func (s *InMemorySettingsStore) SetRemoteLink(ctx context.Context, link string) error {
	s.values[keyRemoteLink] = link
	return nil
}

func (s *InMemorySettingsStore) HasRequestedReview(ctx context.Context) (bool, error) {
	return s.values[keyHasRequestedReview] == "true", nil
}

func (s *InMemorySettingsStore) SetHasRequestedReview(ctx context.Context, requested bool) error {
	if requested {
		s.values[keyHasRequestedReview] = "true"
	} else {
		s.values[keyHasRequestedReview] = "false"
	}
	return nil
}

func (s *InMemorySettingsStore) Theme(ctx context.Context) (string, error) {
	value := s.values[keySelectedTheme]
	if !domain.ValidTheme(value) {
		return domain.ThemeSystem, nil
	}
	return value, nil
}

func (s *InMemorySettingsStore) SetTheme(ctx context.Context, theme string) error {
	s.values[keySelectedTheme] = theme
	return nil
}

func (s *InMemorySettingsStore) Loans(ctx context.Context) ([]domain.Loan, error) {
	value := s.values[keySavedLoans]
	if value == "" {
		return []domain.Loan{}, nil
	}

	var loans []domain.Loan
	if err := json.Unmarshal([]byte(value), &loans); err != nil {
		return nil, err
	}

	return loans, nil
}

func (s *InMemorySettingsStore) SaveLoans(ctx context.Context, loans []domain.Loan) error {
	if loans == nil {
		loans = []domain.Loan{}
	}

	data, err := json.Marshal(loans)
	if err != nil {
		return err
	}

	s.values[keySavedLoans] = string(data)
	return nil
}

func (s *InMemorySettingsStore) ClearSession(ctx context.Context) error {
	delete(s.values, keyAccessToken)
	delete(s.values, keyRemoteLink)
	return nil
}
