package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/barakhava1/CashoryLoanTracker/internal/config"
	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
	customError "github.com/barakhava1/CashoryLoanTracker/pkg/errors"
)

const summaryCacheKey = "cashory:summary"

// LoanService owns the ordered loan collection. Every mutation rewrites the
// whole collection through the settings store, so the last successful write
// is always a complete snapshot. Operations assume a single logical owner;
// the mutex only guards the HTTP surface, it is not a concurrency contract.
type LoanService struct {
	store    repository.SettingsStore
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.Mutex
	loans []domain.Loan
}

func NewLoanService(
	ctx context.Context,
	store repository.SettingsStore,
	cache *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) (*LoanService, error) {
	loans, err := store.Loans(ctx)
	if err != nil {
		return nil, customError.WrapStorageError(err)
	}

	return &LoanService{
		store:    store,
		cache:    cache,
		cacheTTL: cfg.Cache.SummaryTTLDuration(),
		logger:   logger,
		now:      time.Now,
		loans:    loans,
	}, nil
}

// Loans returns a copy of the collection in insertion order.
func (s *LoanService) Loans(ctx context.Context) []domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Loan, len(s.loans))
	copy(out, s.loans)
	return out
}

// Get returns the loan with the given id.
func (s *LoanService) Get(ctx context.Context, id uuid.UUID) (domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, loan := range s.loans {
		if loan.ID == id {
			return loan, nil
		}
	}

	return domain.Loan{}, customError.WrapLoanNotFound(id.String())
}

// Add appends a new loan. The balance starts at the full amount and the
// status hint starts active.
func (s *LoanService) Add(ctx context.Context, req *domain.CreateLoanRequest) (domain.Loan, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Loan{}, customError.WrapInvalidLoanAmount(req.Amount.String())
	}

	loan := domain.Loan{
		ID:              uuid.New(),
		Name:            req.Name,
		Amount:          req.Amount,
		InterestRate:    req.InterestRate,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		RemainingAmount: req.Amount,
		Type:            req.Type,
		Status:          domain.LoanStatusActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, append(s.snapshot(), loan)); err != nil {
		return domain.Loan{}, err
	}

	return loan, nil
}

// Update replaces the loan with the matching id. An unknown id is a silent
// no-op.
func (s *LoanService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLoanRequest) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, nil
	}

	loan := s.loans[index]
	loan.Name = req.Name
	loan.Amount = req.Amount
	loan.InterestRate = req.InterestRate
	loan.StartDate = req.StartDate
	loan.EndDate = req.EndDate
	loan.RemainingAmount = req.RemainingAmount
	loan.Type = req.Type

	if err := s.replaceAt(ctx, index, loan); err != nil {
		return nil, err
	}

	return &loan, nil
}

// Delete removes the loan with the matching id. An unknown id is a silent
// no-op.
func (s *LoanService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil
	}

	loans := s.snapshot()
	return s.persist(ctx, append(loans[:index], loans[index+1:]...))
}

// Pay reduces the remaining balance, clamping at zero. Overpayment is
// accepted and clamps; a clamp to exactly zero marks the loan paid.
func (s *LoanService) Pay(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*domain.Loan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, customError.WrapInvalidPaymentAmount(amount.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, nil
	}

	loan := s.loans[index]
	remaining := loan.RemainingAmount.Sub(amount)
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
	}
	loan.RemainingAmount = remaining

	if remaining.IsZero() {
		loan.MarkPaid()
	}

	if err := s.replaceAt(ctx, index, loan); err != nil {
		return nil, err
	}

	return &loan, nil
}

// MarkPaid zeroes the balance and pins the status hint to paid. Repeating it
// on a paid loan changes nothing.
func (s *LoanService) MarkPaid(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, nil
	}

	loan := s.loans[index]
	loan.MarkPaid()

	if err := s.replaceAt(ctx, index, loan); err != nil {
		return nil, err
	}

	return &loan, nil
}

// ActiveLoans returns the loans whose derived status is active, in order.
func (s *LoanService) ActiveLoans(ctx context.Context) []domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var active []domain.Loan
	for _, loan := range s.loans {
		if loan.StatusAt(now) == domain.LoanStatusActive {
			active = append(active, loan)
		}
	}

	return active
}

// Summary aggregates the collection at the current instant. The result is
// cached in redis; cache failures are logged and never surface.
func (s *LoanService) Summary(ctx context.Context) (domain.Summary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, summaryCacheKey).Result()
		if err == nil {
			var summary domain.Summary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return summary, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("summary cache read failed", "error", err)
		}
	}

	s.mu.Lock()
	now := s.now()
	summary := domain.Summary{
		TotalOutstanding:    decimal.Zero,
		TotalMonthlyPayment: decimal.Zero,
	}

	for _, loan := range s.loans {
		switch loan.StatusAt(now) {
		case domain.LoanStatusActive:
			summary.ActiveCount++
			summary.TotalOutstanding = summary.TotalOutstanding.Add(loan.RemainingAmount)
			summary.TotalMonthlyPayment = summary.TotalMonthlyPayment.Add(loan.MonthlyPaymentAt(now))
		case domain.LoanStatusPaid:
			summary.PaidCount++
		}
	}
	s.mu.Unlock()

	if s.cache != nil {
		data, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, summaryCacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("summary cache write failed", "error", err)
			}
		}
	}

	return summary, nil
}

func (s *LoanService) indexOf(id uuid.UUID) int {
	for i, loan := range s.loans {
		if loan.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the collection so a mutation can be persisted before it
// becomes visible. Callers hold the mutex.
func (s *LoanService) snapshot() []domain.Loan {
	out := make([]domain.Loan, len(s.loans))
	copy(out, s.loans)
	return out
}

func (s *LoanService) replaceAt(ctx context.Context, index int, loan domain.Loan) error {
	loans := s.snapshot()
	loans[index] = loan
	return s.persist(ctx, loans)
}

// persist writes the candidate collection and publishes it only after the
// store accepted it, so a failed write never leaves readers looking at
// unpersisted state. Drops the summary cache. Callers hold the mutex.
func (s *LoanService) persist(ctx context.Context, loans []domain.Loan) error {
	if err := s.store.SaveLoans(ctx, loans); err != nil {
		return customError.WrapStorageError(err)
	}
	s.loans = loans

	if s.cache != nil {
		if err := s.cache.Del(ctx, summaryCacheKey).Err(); err != nil {
			s.logger.Warn("summary cache invalidation failed", "error", err)
		}
	}

	return nil
}
