package handler

import (
	"net/http"
	"sync"

	"github.com/barakhava1/CashoryLoanTracker/internal/bootstrap"
	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/pkg/response"
)

// StateHandler serves the startup decision made at process start. The
// review-eligible signal is one-shot: the first read consumes it.
type StateHandler struct {
	mu      sync.Mutex
	outcome bootstrap.Outcome
}

func NewStateHandler(outcome bootstrap.Outcome) *StateHandler {
	return &StateHandler{outcome: outcome}
}

func (h *StateHandler) State(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	out := domain.StateResponse{
		State:          h.outcome.State,
		ReviewEligible: h.outcome.ReviewEligible,
	}
	if h.outcome.State == domain.AppStateContent {
		out.Destination = h.outcome.Destination
	}
	h.outcome.ReviewEligible = false
	h.mu.Unlock()

	response.Success(w, out)
}
