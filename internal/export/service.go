package export

import (
	"context"

	"github.com/finance-tracker/backend/internal/metrics"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
)

// Source provides the transactions to export.
type Source interface {
	FindTransactionsByOwnerAndRange(ctx context.Context, owner uuid.UUID, from, to *types.Date) ([]models.Transaction, error)
}

type Service struct {
	source    Source
	processor *Processor
}

func NewService(source Source, processor *Processor) *Service {
	return &Service{source: source, processor: processor}
}

// Export renders all transactions of owner dated within the bounds. A nil
// bound does not restrict the range.
func (s *Service) Export(ctx context.Context, owner uuid.UUID, format Format, from, to *types.Date) (file File, err error) {
	defer func() {
		metrics.CountExport(string(format), err)
	}()

	if err := service.RequireOwner(owner); err != nil {
		return File{}, err
	}

	if from != nil && to != nil && from.After(*to) {
		return File{}, models.ErrDateRange
	}

	transactions, err := s.source.FindTransactionsByOwnerAndRange(ctx, owner, from, to)
	if err != nil {
		return File{}, err
	}

	rows := NewRows(transactions)
	return s.processor.Render(format, rows, Accumulate(rows))
}
