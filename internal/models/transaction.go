package models

import (
	"strings"
	"unicode/utf8"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	User        User            `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Category    *Category       `gorm:"constraint:OnDelete:SET NULL"`
	Type        TransactionType `gorm:"size:16;not null;index"`
	Amount      decimal.Decimal `gorm:"-"`
	AmountMinor int64           `gorm:"column:amount;not null"` // Amount in hundredths, the unit all sums are computed in
	Date        types.Date      `gorm:"index;not null"`
	Description string
}

// AfterFind restores Amount from the stored minor units.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Amount = decimal.New(t.AmountMinor, -2)
	return nil
}

// BeforeSave
//   - trims whitespace from the description
//   - ensures that the category ID is nil and not a pointer to a nil UUID
//   - validates type, amount and date
//   - converts the amount to minor units
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if err := t.Type.Validate(); err != nil {
		return err
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Amount.Equal(t.Amount.Truncate(2)) {
		return ErrAmountScale
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if utf8.RuneCountInString(t.Description) > 255 {
		return ErrDescriptionTooLong
	}

	if !t.Amount.Shift(2).BigInt().IsInt64() {
		return ErrAmountTooLarge
	}

	t.AmountMinor = t.Amount.Shift(2).IntPart()
	return nil
}
