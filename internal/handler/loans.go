package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/service"
	customError "github.com/barakhava1/CashoryLoanTracker/pkg/errors"
	"github.com/barakhava1/CashoryLoanTracker/pkg/response"
)

type LoanHandler struct {
	service   *service.LoanService
	validator *validator.Validate
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{
		service:   service,
		validator: newValidator(),
	}
}

// List returns every loan with derived fields evaluated now.
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	loans := h.service.Loans(r.Context())

	out := make([]domain.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, domain.NewLoanResponse(loan, now))
	}

	response.Success(w, out)
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	loan, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, domain.NewLoanResponse(loan, time.Now()))
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	loan, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, domain.NewLoanResponse(loan, time.Now()))
}

func (h *LoanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "validation failed", err)
		return
	}

	loan, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if loan == nil {
		response.NotFound(w, "loan not found")
		return
	}

	response.Success(w, domain.NewLoanResponse(*loan, time.Now()))
}

func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LoanHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	loan, err := h.service.Pay(r.Context(), id, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if loan == nil {
		response.NotFound(w, "loan not found")
		return
	}

	response.Success(w, domain.NewLoanResponse(*loan, time.Now()))
}

func (h *LoanHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := loanID(w, r)
	if !ok {
		return
	}

	loan, err := h.service.MarkPaid(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if loan == nil {
		response.NotFound(w, "loan not found")
		return
	}

	response.Success(w, domain.NewLoanResponse(*loan, time.Now()))
}

func (h *LoanHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, summary)
}

func loanID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customError.ErrInvalidPaymentAmount),
		errors.Is(err, customError.ErrInvalidLoanAmount):
		response.BadRequest(w, "invalid amount", err)
	case errors.Is(err, customError.ErrLoanNotFound):
		response.NotFound(w, "loan not found")
	default:
		response.InternalServerError(w, "operation failed", err)
	}
}
