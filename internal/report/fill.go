package report

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// FillMonths returns one entry for every month from from to to, both inclusive,
// in ascending order. Months missing in sparse have a total of zero.
func FillMonths(sparse map[types.Month]decimal.Decimal, from, to types.Month) ([]MonthlyTrend, error) {
	if from.After(to) {
		return nil, models.ErrMonthRange
	}

	trend := make([]MonthlyTrend, 0, types.MonthsBetween(from, to)+1)
	for month := from; !month.After(to); month = month.Next() {
		total, ok := sparse[month]
		if !ok {
			total = decimal.Zero
		}

		trend = append(trend, MonthlyTrend{
			Month: month,
			Total: total,
		})
	}

	return trend, nil
}
