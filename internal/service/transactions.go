package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// TransactionFilter restricts transaction listings.
type TransactionFilter struct {
	ledger.TransactionFilter

	// Description is a glob pattern matched case insensitively. A pattern
	// without wildcards matches descriptions containing it.
	Description string
}

type Transactions struct {
	store ledger.Store
	now   func() time.Time
}

// NewTransactions returns the transaction service. now is used to reject
// transactions with a date in the future, it defaults to time.Now.
func NewTransactions(store ledger.Store, now func() time.Time) *Transactions {
	if now == nil {
		now = time.Now
	}

	return &Transactions{store: store, now: now}
}

// Create stores a new transaction owned by owner.
//
// If the transaction references a category, the category must be owned by
// owner. The check and the insert happen in the same database transaction.
func (s *Transactions) Create(ctx context.Context, owner uuid.UUID, transaction models.Transaction) (models.Transaction, error) {
	if err := RequireOwner(owner); err != nil {
		return models.Transaction{}, err
	}

	transaction.ID = uuid.Nil
	transaction.UserID = owner

	if err := s.validateDate(transaction.Date); err != nil {
		return models.Transaction{}, err
	}

	err := s.store.Atomic(ctx, func(store ledger.Store) error {
		if err := checkCategory(ctx, store, transaction.CategoryID, owner); err != nil {
			return err
		}

		return store.CreateTransaction(ctx, &transaction)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

func (s *Transactions) Get(ctx context.Context, owner, id uuid.UUID) (models.Transaction, error) {
	return Authorize[models.Transaction](ctx, s.store, id, owner)
}

// List returns the transactions of owner matching the filter, ordered by date.
func (s *Transactions) List(ctx context.Context, owner uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	if err := RequireOwner(owner); err != nil {
		return nil, err
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, models.ErrDateRange
	}

	transactions, err := s.store.ListTransactions(ctx, owner, filter.TransactionFilter)
	if err != nil {
		return nil, err
	}

	if filter.Description == "" {
		return transactions, nil
	}

	pattern := strings.ToLower(filter.Description)
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	matching := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if glob.Glob(pattern, strings.ToLower(transaction.Description)) {
			matching = append(matching, transaction)
		}
	}

	return matching, nil
}

// Update applies patch to the transaction and saves it.
//
// The transaction is fetched, checked and saved in the same database transaction.
// ID and owner cannot be changed by patch.
func (s *Transactions) Update(ctx context.Context, owner, id uuid.UUID, patch func(*models.Transaction)) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.store.Atomic(ctx, func(store ledger.Store) error {
		var err error
		transaction, err = Authorize[models.Transaction](ctx, store, id, owner)
		if err != nil {
			return err
		}

		patch(&transaction)
		transaction.ID = id
		transaction.UserID = owner
		transaction.Category = nil

		if err := s.validateDate(transaction.Date); err != nil {
			return err
		}

		if err := checkCategory(ctx, store, transaction.CategoryID, owner); err != nil {
			return err
		}

		return store.SaveTransaction(ctx, &transaction)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

func (s *Transactions) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.store.Atomic(ctx, func(store ledger.Store) error {
		transaction, err := Authorize[models.Transaction](ctx, store, id, owner)
		if err != nil {
			return err
		}

		return store.DeleteTransaction(ctx, transaction)
	})
}

// validateDate rejects dates after the current day in UTC.
func (s *Transactions) validateDate(date types.Date) error {
	if date.IsZero() {
		return models.ErrDateMissing
	}

	if date.After(types.DateOf(s.now().In(time.UTC))) {
		return models.ErrDateInFuture
	}

	return nil
}

// checkCategory verifies that the category is owned by owner. A category that
// does not exist or belongs to another user is reported as not found.
func checkCategory(ctx context.Context, store ledger.Store, id *uuid.UUID, owner uuid.UUID) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}

	exists, err := store.ExistsCategoryForOwner(ctx, *id, owner)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
	}

	return nil
}
