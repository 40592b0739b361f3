package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/barakhava1/CashoryLoanTracker/internal/bootstrap"
	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) AccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsStore) SetAccessToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSettingsStore) RemoteLink(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsStore) SetRemoteLink(ctx context.Context, link string) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSettingsStore) HasRequestedReview(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsStore) SetHasRequestedReview(ctx context.Context, requested bool) error {
	args := m.Called(ctx, requested)
	return args.Error(0)
}

func (m *MockSettingsStore) Theme(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsStore) SetTheme(ctx context.Context, theme string) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockSettingsStore) Loans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockSettingsStore) SaveLoans(ctx context.Context, loans []domain.Loan) error {
	args := m.Called(ctx, loans)
	return args.Error(0)
}

func (m *MockSettingsStore) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBootstrapClient struct {
	mock.Mock
}

func (m *MockBootstrapClient) FetchInitialData(ctx context.Context) (*bootstrap.Payload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bootstrap.Payload), args.Error(1)
}
