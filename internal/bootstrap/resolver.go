package bootstrap

import (
	"context"
	"log/slog"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
	customError "github.com/barakhava1/CashoryLoanTracker/pkg/errors"
)

// Outcome is the single startup decision: hand off to the remote destination
// or run the native loan tracker. ReviewEligible fires at most once per
// install, the first time a persisted session is reused.
type Outcome struct {
	State          string
	Destination    string
	ReviewEligible bool
}

// Resolver decides the startup state exactly once per process. Any bootstrap
// failure falls open to the native app; loan tracking is never blocked by
// the gate.
type Resolver struct {
	store    repository.SettingsStore
	client   Client
	logger   *slog.Logger
	resolved bool
}

func NewResolver(store repository.SettingsStore, client Client, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Resolve runs the startup decision. A persisted token and destination short
// circuit to content; otherwise exactly one bootstrap request is made. A
// second call on the same resolver is an error.
func (r *Resolver) Resolve(ctx context.Context) (Outcome, error) {
	if r.resolved {
		return Outcome{}, customError.ErrAlreadyResolved
	}
	r.resolved = true

	token, err := r.store.AccessToken(ctx)
	if err != nil {
		r.logger.Warn("reading persisted token failed", "error", err)
	}
	link, err := r.store.RemoteLink(ctx)
	if err != nil {
		r.logger.Warn("reading persisted destination failed", "error", err)
	}

	if token != "" && link != "" {
		outcome := Outcome{State: domain.AppStateContent, Destination: link}

		requested, err := r.store.HasRequestedReview(ctx)
		if err != nil {
			r.logger.Warn("reading review flag failed", "error", err)
		} else if !requested {
			if err := r.store.SetHasRequestedReview(ctx, true); err != nil {
				r.logger.Warn("consuming review flag failed", "error", err)
			} else {
				outcome.ReviewEligible = true
			}
		}

		return outcome, nil
	}

	payload, err := r.client.FetchInitialData(ctx)
	if err != nil {
		r.logger.Info("bootstrap unavailable, continuing to native app", "error", err)
		return Outcome{State: domain.AppStateMain}, nil
	}
	if payload == nil {
		return Outcome{State: domain.AppStateMain}, nil
	}

	if err := r.store.SetAccessToken(ctx, payload.Token); err != nil {
		r.logger.Warn("persisting bootstrap token failed", "error", err)
	}
	if err := r.store.SetRemoteLink(ctx, payload.Link); err != nil {
		r.logger.Warn("persisting bootstrap destination failed", "error", err)
	}

	return Outcome{State: domain.AppStateContent, Destination: payload.Link}, nil
}
