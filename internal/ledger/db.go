package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTimeout is used for every database call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// DB implements Store with gorm.
type DB struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ Store = &DB{}

// New returns a Store backed by db. Each call to the store is bounded by timeout.
func New(db *gorm.DB, timeout time.Duration) *DB {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &DB{db: db, timeout: timeout}
}

func (d *DB) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	return d.db.WithContext(ctx), cancel
}

func (d *DB) Atomic(ctx context.Context, fn func(Store) error) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	// Errors from fn are already translated, this only affects
	// failures to begin or commit the transaction
	return models.DatabaseError(d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DB{db: tx, timeout: d.timeout})
	}))
}

func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Omit(clause.Associations).Create(user).Error
}

func (d *DB) FindUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	var user models.User
	err := q.First(&user, "id = ?", id).Error
	return user, err
}

func (d *DB) FindOwned(ctx context.Context, dest any, id, owner uuid.UUID) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Where("id = ? AND user_id = ?", id, owner).First(dest).Error
}

func (d *DB) FindCategoryByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.Category, error) {
	var category models.Category
	err := d.FindOwned(ctx, &category, id, owner)
	return category, err
}

func (d *DB) FindTransactionByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := d.FindOwned(ctx, &transaction, id, owner)
	return transaction, err
}

func (d *DB) ExistsCategoryForOwner(ctx context.Context, id, owner uuid.UUID) (bool, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	var count int64
	err := q.Model(&models.Category{}).Where("id = ? AND user_id = ?", id, owner).Count(&count).Error
	return count > 0, err
}

func (d *DB) CreateCategory(ctx context.Context, category *models.Category) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Omit(clause.Associations).Create(category).Error
}

func (d *DB) SaveCategory(ctx context.Context, category *models.Category) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Omit(clause.Associations).Save(category).Error
}

// DeleteCategory removes the category and detaches all of its transactions.
//
// The foreign key also sets the reference to NULL, the explicit update keeps
// the behaviour identical on connections without foreign key enforcement.
func (d *DB) DeleteCategory(ctx context.Context, category models.Category) error {
	q, cancel := d.session(ctx)
	defer cancel()

	err := q.Model(&models.Transaction{}).
		Where("category_id = ? AND user_id = ?", category.ID, category.UserID).
		UpdateColumn("category_id", nil).Error
	if err != nil {
		return err
	}

	return q.Where("user_id = ?", category.UserID).Delete(&category).Error
}

func (d *DB) ListCategories(ctx context.Context, owner uuid.UUID, filter CategoryFilter) ([]models.Category, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	q = q.Where("user_id = ?", owner)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", fmt.Sprintf("%%%s%%", strings.ToLower(filter.Name)))
	}

	var categories []models.Category
	err := q.Order("name ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (d *DB) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Omit(clause.Associations).Create(transaction).Error
}

func (d *DB) SaveTransaction(ctx context.Context, transaction *models.Transaction) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Omit(clause.Associations).Save(transaction).Error
}

func (d *DB) DeleteTransaction(ctx context.Context, transaction models.Transaction) error {
	q, cancel := d.session(ctx)
	defer cancel()

	return q.Where("user_id = ?", transaction.UserID).Delete(&transaction).Error
}

func (d *DB) ListTransactions(ctx context.Context, owner uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	q = q.Where("user_id = ?", owner)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	q = dateRange(q, "date", filter.From, filter.To)

	var transactions []models.Transaction
	err := q.Order("date ASC, created_at ASC, id ASC").Find(&transactions).Error
	return transactions, err
}

func (d *DB) FindTransactionsByOwnerAndRange(ctx context.Context, owner uuid.UUID, from, to *types.Date) ([]models.Transaction, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	q = dateRange(q.Where("user_id = ?", owner), "date", from, to)

	var transactions []models.Transaction
	err := q.Preload("Category").Order("date ASC, created_at ASC, id ASC").Find(&transactions).Error
	return transactions, err
}

func (d *DB) SumAmountByOwnerTypeRange(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) (decimal.Decimal, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	var sum int64
	err := q.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", owner, typ).
		Where("date >= ? AND date <= ?", from, to).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, sumError(err)
	}

	return minorUnits(sum), nil
}

func (d *DB) GroupSumByCategory(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]CategoryTotal, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	var rows []struct {
		CategoryID   uuid.UUID
		CategoryName string
		Total        int64
	}

	err := q.Model(&models.Transaction{}).
		Select("categories.id AS category_id, categories.name AS category_name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id AND categories.user_id = transactions.user_id").
		Where("transactions.user_id = ? AND transactions.type = ?", owner, typ).
		Where("transactions.date >= ? AND transactions.date <= ?", from, to).
		Group("categories.id, categories.name").
		Order("categories.name ASC, categories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, sumError(err)
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        minorUnits(row.Total),
		})
	}

	return totals, nil
}

func (d *DB) MonthBucketedSums(ctx context.Context, owner uuid.UUID, typ models.TransactionType, from, to types.Date) ([]MonthTotal, error) {
	q, cancel := d.session(ctx)
	defer cancel()

	bucket := monthBucket(d.db)

	var rows []struct {
		Bucket string
		Total  int64
	}

	err := q.Model(&models.Transaction{}).
		Select(fmt.Sprintf("%s AS bucket, COALESCE(SUM(amount), 0) AS total", bucket)).
		Where("user_id = ? AND type = ?", owner, typ).
		Where("date >= ? AND date <= ?", from, to).
		Group(bucket).
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, sumError(err)
	}

	totals := make([]MonthTotal, 0, len(rows))
	for _, row := range rows {
		month, err := types.ParseMonth(row.Bucket)
		if err != nil {
			return nil, fmt.Errorf("%w: month bucket '%s' could not be parsed", models.ErrGeneral, row.Bucket)
		}

		totals = append(totals, MonthTotal{
			Year:  month.Year(),
			Month: month.Month(),
			Total: minorUnits(row.Total),
		})
	}

	return totals, nil
}

// monthBucket returns the SQL expression that yields YYYY-MM for the date column.
func monthBucket(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(date, 'YYYY-MM')"
	}

	return "substr(date, 1, 7)"
}

func dateRange(q *gorm.DB, column string, from, to *types.Date) *gorm.DB {
	if from != nil {
		q = q.Where(fmt.Sprintf("%s >= ?", column), *from)
	}

	if to != nil {
		q = q.Where(fmt.Sprintf("%s <= ?", column), *to)
	}

	return q
}

// sumError maps errors of aggregate queries to ErrGeneral. Scanning
// aggregates fails when the total does not fit the minor unit column.
func sumError(err error) error {
	err = models.DatabaseError(err)
	if errors.Is(err, models.ErrGeneral) {
		return err
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return models.ErrGeneral
}

func minorUnits(sum int64) decimal.Decimal {
	return decimal.New(sum, -2)
}
