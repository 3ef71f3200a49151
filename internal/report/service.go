package report

import (
	"context"
	"time"

	"github.com/finance-tracker/backend/internal/metrics"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
)

// Service computes the reports for a user.
//
// Every report validates its input before the ledger is queried. Reports are
// either returned complete or not at all.
type Service struct {
	engine *Engine
}

func NewService(source Source) *Service {
	return &Service{engine: NewEngine(source)}
}

// MonthlySummary returns income, expense and balance for the month.
func (s *Service) MonthlySummary(ctx context.Context, owner uuid.UUID, month types.Month) (MonthlySummary, error) {
	defer metrics.ObserveReport("monthly_summary", time.Now())

	if err := service.RequireOwner(owner); err != nil {
		return MonthlySummary{}, err
	}

	if month.IsZero() {
		return MonthlySummary{}, models.ErrMonthMissing
	}

	from, to := month.FirstDay(), month.LastDay()

	income, err := s.engine.SumByTypeAndRange(ctx, owner, models.TypeIncome, from, to)
	if err != nil {
		return MonthlySummary{}, err
	}

	expense, err := s.engine.SumByTypeAndRange(ctx, owner, models.TypeExpense, from, to)
	if err != nil {
		return MonthlySummary{}, err
	}

	return MonthlySummary{
		Month:   month,
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// CategorySummary returns the totals per category for transactions of the type in the month.
func (s *Service) CategorySummary(ctx context.Context, owner uuid.UUID, month types.Month, typ models.TransactionType) ([]CategorySummary, error) {
	defer metrics.ObserveReport("category_summary", time.Now())

	if err := service.RequireOwner(owner); err != nil {
		return nil, err
	}

	if month.IsZero() {
		return nil, models.ErrMonthMissing
	}

	return s.engine.GroupByCategory(ctx, owner, typ, month.FirstDay(), month.LastDay())
}

// PeriodSummary returns income, expense and balance for all days from from to to.
func (s *Service) PeriodSummary(ctx context.Context, owner uuid.UUID, from, to types.Date) (PeriodSummary, error) {
	defer metrics.ObserveReport("period_summary", time.Now())

	if err := service.RequireOwner(owner); err != nil {
		return PeriodSummary{}, err
	}

	if from.IsZero() || to.IsZero() {
		return PeriodSummary{}, models.ErrDateMissing
	}

	if from.After(to) {
		return PeriodSummary{}, models.ErrDateRange
	}

	income, err := s.engine.SumByTypeAndRange(ctx, owner, models.TypeIncome, from, to)
	if err != nil {
		return PeriodSummary{}, err
	}

	expense, err := s.engine.SumByTypeAndRange(ctx, owner, models.TypeExpense, from, to)
	if err != nil {
		return PeriodSummary{}, err
	}

	return PeriodSummary{
		From:    from,
		To:      to,
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// MonthlyTrend returns the totals of the type for every month from from to to.
// Months without transactions are included with a total of zero.
func (s *Service) MonthlyTrend(ctx context.Context, owner uuid.UUID, from, to types.Month, typ models.TransactionType) ([]MonthlyTrend, error) {
	defer metrics.ObserveReport("monthly_trend", time.Now())

	if err := service.RequireOwner(owner); err != nil {
		return nil, err
	}

	if from.IsZero() || to.IsZero() {
		return nil, models.ErrMonthMissing
	}

	if from.After(to) {
		return nil, models.ErrMonthRange
	}

	sparse, err := s.engine.MonthlyAggregates(ctx, owner, typ, from, to)
	if err != nil {
		return nil, err
	}

	return FillMonths(sparse, from, to)
}
