package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/barakhava1/CashoryLoanTracker/internal/config"
	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg)
	logger.Info("starting reminder scheduler")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := repository.NewSettingsRepository(db)

	c := cron.New(cron.WithSeconds(), cron.WithLocation(cfg.Scheduler.Location()))
	setupCronJobs(c, store, logger)

	c.Start()
	logger.Info("scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down scheduler")
	c.Stop()
	logger.Info("scheduler stopped")
}

func setupCronJobs(c *cron.Cron, store repository.SettingsStore, logger *slog.Logger) {
	// Daily overdue sweep at midnight. Status is derived on read, so the
	// sweep only reports; it never writes status back.
	_, err := c.AddFunc("0 0 0 * * *", func() {
		sweepOverdueLoans(store, logger)
	})
	if err != nil {
		logger.Error("scheduling overdue sweep failed", "error", err)
	}

	// Weekly reminder on Sundays at 9 AM for loans ending soon.
	_, err = c.AddFunc("0 0 9 * * SUN", func() {
		remindUpcomingEndDates(store, logger)
	})
	if err != nil {
		logger.Error("scheduling upcoming-end reminder failed", "error", err)
	}
}

func sweepOverdueLoans(store repository.SettingsStore, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loans, err := store.Loans(ctx)
	if err != nil {
		logger.Error("overdue sweep: loading loans failed", "error", err)
		return
	}

	now := time.Now()
	overdue := 0
	for _, loan := range loans {
		if loan.StatusAt(now) != domain.LoanStatusOverdue {
			continue
		}
		overdue++
		logger.Warn("loan overdue",
			"id", loan.ID,
			"name", loan.Name,
			"endDate", loan.EndDate,
			"remaining", loan.RemainingAmount,
		)
	}

	logger.Info("overdue sweep finished", "total", len(loans), "overdue", overdue)
}

func remindUpcomingEndDates(store repository.SettingsStore, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loans, err := store.Loans(ctx)
	if err != nil {
		logger.Error("reminder: loading loans failed", "error", err)
		return
	}

	now := time.Now()
	horizon := now.AddDate(0, 1, 0)
	for _, loan := range loans {
		if loan.StatusAt(now) != domain.LoanStatusActive {
			continue
		}
		if loan.EndDate.After(horizon) {
			continue
		}
		logger.Info("loan ending soon",
			"id", loan.ID,
			"name", loan.Name,
			"endDate", loan.EndDate,
			"monthlyPayment", loan.MonthlyPaymentAt(now),
		)
	}
}
