package handler

import (
	"encoding/json"
	"net/http"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
	"github.com/barakhava1/CashoryLoanTracker/pkg/response"
)

type SettingsHandler struct {
	store repository.SettingsStore
}

func NewSettingsHandler(store repository.SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.Theme(r.Context())
	if err != nil {
		response.InternalServerError(w, "reading theme failed", err)
		return
	}

	response.Success(w, domain.ThemeResponse{Theme: theme})
}

func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req domain.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if !domain.ValidTheme(req.Theme) {
		response.BadRequest(w, "unknown theme", nil)
		return
	}

	if err := h.store.SetTheme(r.Context(), req.Theme); err != nil {
		response.InternalServerError(w, "persisting theme failed", err)
		return
	}

	response.Success(w, domain.ThemeResponse{Theme: req.Theme})
}

// ClearSession drops the persisted bootstrap token and destination. The next
// process start behaves like a fresh install and re-runs the bootstrap
// request.
func (h *SettingsHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSession(r.Context()); err != nil {
		response.InternalServerError(w, "clearing session failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
