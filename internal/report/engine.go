// Package report computes aggregate reports over the transactions of a user.
package report

import (
	"context"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source is the subset of the ledger the engine aggregates over.
type Source interface {
	SumAmountByOwnerTypeRange(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) (decimal.Decimal, error)
	GroupSumByCategory(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]ledger.CategoryTotal, error)
	MonthBucketedSums(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]ledger.MonthTotal, error)
}

// Engine computes sums, category groups and month buckets for one user.
//
// All sums are exact. An empty selection sums to zero.
type Engine struct {
	source Source
}

func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// SumByTypeAndRange sums the transactions of the type dated within [from, to].
func (e *Engine) SumByTypeAndRange(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) (decimal.Decimal, error) {
	if err := typ.Validate(); err != nil {
		return decimal.Zero, err
	}

	sum, err := e.source.SumAmountByOwnerTypeRange(ctx, owner, typ, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Round(2), nil
}

// GroupByCategory sums the transactions of the type dated within [from, to] per category.
//
// Uncategorized transactions are not part of the result.
func (e *Engine) GroupByCategory(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]CategorySummary, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}

	totals, err := e.source.GroupSumByCategory(ctx, owner, typ, from, to)
	if err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, total := range totals {
		summaries = append(summaries, CategorySummary{
			CategoryID:   total.CategoryID,
			CategoryName: total.CategoryName,
			Total:        total.Total.Round(2),
		})
	}

	return summaries, nil
}

// MonthlyAggregates sums the transactions of the type per month for all months
// from the first day of from to the last day of to. Months without
// transactions have no entry.
func (e *Engine) MonthlyAggregates(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Month) (map[types.Month]decimal.Decimal, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}

	totals, err := e.source.MonthBucketedSums(ctx, owner, typ, from.FirstDay(), to.LastDay())
	if err != nil {
		return nil, err
	}

	sparse := make(map[types.Month]decimal.Decimal, len(totals))
	for _, total := range totals {
		month := types.NewMonth(total.Year, total.Month)
		sparse[month] = sparse[month].Add(total.Total).Round(2)
	}

	return sparse, nil
}
