package report_test

import (
	"context"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeTransaction is a transaction as seen by fakeSource.
type fakeTransaction struct {
	owner    uuid.UUID
	category *ledger.CategoryTotal
	typ      models.TransactionType
	amount   decimal.Decimal
	date     types.Date
}

// fakeSource aggregates over an in-memory list of transactions.
type fakeSource struct {
	transactions []fakeTransaction
	calls        int
	err          error
}

func (f *fakeSource) matching(owner uuid.UUID, typ models.TransactionType, from, to types.Date) []fakeTransaction {
	var result []fakeTransaction
	for _, t := range f.transactions {
		if t.owner == owner && t.typ == typ && !t.date.Before(from) && !t.date.After(to) {
			result = append(result, t)
		}
	}

	return result
}

func (f *fakeSource) SumAmountByOwnerTypeRange(_ context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) (decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return decimal.Zero, f.err
	}

	sum := decimal.Zero
	for _, t := range f.matching(owner, typ, from, to) {
		sum = sum.Add(t.amount)
	}

	return sum, nil
}

func (f *fakeSource) GroupSumByCategory(_ context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]ledger.CategoryTotal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var totals []ledger.CategoryTotal
	index := make(map[uuid.UUID]int)
	for _, t := range f.matching(owner, typ, from, to) {
		if t.category == nil {
			continue
		}

		i, ok := index[t.category.CategoryID]
		if !ok {
			i = len(totals)
			index[t.category.CategoryID] = i
			totals = append(totals, ledger.CategoryTotal{CategoryID: t.category.CategoryID, CategoryName: t.category.CategoryName})
		}
		totals[i].Total = totals[i].Total.Add(t.amount)
	}

	return totals, nil
}

func (f *fakeSource) MonthBucketedSums(_ context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]ledger.MonthTotal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var totals []ledger.MonthTotal
	for _, t := range f.matching(owner, typ, from, to) {
		totals = append(totals, ledger.MonthTotal{Year: t.date.Year(), Month: t.date.Month(), Total: t.amount})
	}

	return totals, nil
}
