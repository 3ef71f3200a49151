// Package ledger persists users, categories and transactions and runs the
// owner scoped queries the reports are built from.
package ledger

import (
	"context"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the sum of all transactions of one category.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// MonthTotal is the sum of all transactions in one calendar month.
type MonthTotal struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// CategoryFilter restricts category listings. Zero values do not filter.
type CategoryFilter struct {
	Type models.TransactionType
	Name string // Case insensitive substring of the name
}

// TransactionFilter restricts transaction listings. Zero values do not filter.
type TransactionFilter struct {
	Type       models.TransactionType
	CategoryID *uuid.UUID
	From       *types.Date
	To         *types.Date
}

// Store is the persistence boundary. Every method that reads or writes
// categories or transactions is scoped to one owner.
type Store interface {
	// Atomic runs fn in a database transaction. The Store passed to fn
	// must be used for all operations that belong to the transaction.
	Atomic(ctx context.Context, fn func(Store) error) error

	CreateUser(ctx context.Context, user *models.User) error
	FindUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// FindOwned loads the resource with the ID into dest if it belongs to owner.
	// dest must be a *models.Category or *models.Transaction.
	FindOwned(ctx context.Context, dest any, id, owner uuid.UUID) error
	FindCategoryByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.Category, error)
	FindTransactionByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.Transaction, error)
	ExistsCategoryForOwner(ctx context.Context, id, owner uuid.UUID) (bool, error)

	CreateCategory(ctx context.Context, category *models.Category) error
	SaveCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, category models.Category) error
	ListCategories(ctx context.Context, owner uuid.UUID, filter CategoryFilter) ([]models.Category, error)

	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	SaveTransaction(ctx context.Context, transaction *models.Transaction) error
	DeleteTransaction(ctx context.Context, transaction models.Transaction) error
	ListTransactions(ctx context.Context, owner uuid.UUID, filter TransactionFilter) ([]models.Transaction, error)

	// FindTransactionsByOwnerAndRange returns the transactions of owner ordered by date,
	// then creation. A nil bound does not restrict the range.
	FindTransactionsByOwnerAndRange(ctx context.Context, owner uuid.UUID, from, to *types.Date) ([]models.Transaction, error)

	// SumAmountByOwnerTypeRange sums the amounts of all transactions of the
	// type within [from, to]. The sum is zero when no transaction matches.
	SumAmountByOwnerTypeRange(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) (decimal.Decimal, error)

	// GroupSumByCategory sums the amounts per category. Transactions without
	// a category are not part of any group.
	GroupSumByCategory(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]CategoryTotal, error)

	// MonthBucketedSums sums the amounts per calendar month. Months without
	// transactions are omitted.
	MonthBucketedSums(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]MonthTotal, error)
}
