package bootstrap_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/barakhava1/CashoryLoanTracker/internal/bootstrap"
	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
	customError "github.com/barakhava1/CashoryLoanTracker/pkg/errors"
	"github.com/barakhava1/CashoryLoanTracker/tests/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_PersistedSessionGoesToContent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()
	require.NoError(t, store.SetAccessToken(ctx, "tok123"))
	require.NoError(t, store.SetRemoteLink(ctx, "https://example.com"))

	client := &mocks.MockBootstrapClient{}
	resolver := bootstrap.NewResolver(store, client, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.AppStateContent, outcome.State)
	assert.Equal(t, "https://example.com", outcome.Destination)
	assert.True(t, outcome.ReviewEligible, "first reuse of a persisted session is review eligible")

	requested, err := store.HasRequestedReview(ctx)
	require.NoError(t, err)
	assert.True(t, requested, "review flag is consumed")

	client.AssertNotCalled(t, "FetchInitialData", mock.Anything)
}

func TestResolve_ReviewSignalFiresOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()
	require.NoError(t, store.SetAccessToken(ctx, "tok123"))
	require.NoError(t, store.SetRemoteLink(ctx, "https://example.com"))
	require.NoError(t, store.SetHasRequestedReview(ctx, true))

	resolver := bootstrap.NewResolver(store, &mocks.MockBootstrapClient{}, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AppStateContent, outcome.State)
	assert.False(t, outcome.ReviewEligible)
}

func TestResolve_FetchSuccessPersistsAndGoesToContent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()

	client := &mocks.MockBootstrapClient{}
	client.On("FetchInitialData", mock.Anything).
		Return(&bootstrap.Payload{Token: "tok123", Link: "https://example.com"}, nil)

	resolver := bootstrap.NewResolver(store, client, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.AppStateContent, outcome.State)
	assert.Equal(t, "https://example.com", outcome.Destination)
	assert.False(t, outcome.ReviewEligible)

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	link, err := store.RemoteLink(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link)

	client.AssertExpectations(t)
}

func TestResolve_EmptyAnswerGoesToMain(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()

	client := &mocks.MockBootstrapClient{}
	client.On("FetchInitialData", mock.Anything).Return(nil, nil)

	resolver := bootstrap.NewResolver(store, client, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AppStateMain, outcome.State)

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "nothing persisted without a bootstrap answer")
}

func TestResolve_FetchFailureFallsOpenToMain(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()

	client := &mocks.MockBootstrapClient{}
	client.On("FetchInitialData", mock.Anything).Return(nil, errors.New("connection refused"))

	resolver := bootstrap.NewResolver(store, client, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err, "bootstrap failure is never surfaced")
	assert.Equal(t, domain.AppStateMain, outcome.State)
}

func TestResolve_SecondCallIsRejected(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()

	client := &mocks.MockBootstrapClient{}
	client.On("FetchInitialData", mock.Anything).Return(nil, nil).Once()

	resolver := bootstrap.NewResolver(store, client, discardLogger())

	_, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx)
	assert.ErrorIs(t, err, customError.ErrAlreadyResolved)
	client.AssertExpectations(t)
}

func TestResolve_ClearedSessionRetriggersFetch(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySettingsStore()
	require.NoError(t, store.SetAccessToken(ctx, "tok123"))
	require.NoError(t, store.SetRemoteLink(ctx, "https://example.com"))
	require.NoError(t, store.ClearSession(ctx))

	client := &mocks.MockBootstrapClient{}
	client.On("FetchInitialData", mock.Anything).Return(nil, nil).Once()

	resolver := bootstrap.NewResolver(store, client, discardLogger())

	outcome, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AppStateMain, outcome.State)
	client.AssertExpectations(t)
}
