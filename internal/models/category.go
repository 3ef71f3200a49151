package models

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Category groups transactions of one user.
type Category struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	User        User            `gorm:"constraint:OnDelete:CASCADE"`
	Name        string          `gorm:"not null"`
	Type        TransactionType `gorm:"size:16;not null"`
	Description string
}

// BeforeSave normalises string fields and validates the category.
//
// Names are compared and measured in NFC so that visually identical
// names have the same length limit.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = norm.NFC.String(strings.TrimSpace(c.Name))
	c.Description = norm.NFC.String(strings.TrimSpace(c.Description))

	if c.Name == "" {
		return ErrCategoryNameBlank
	}

	if utf8.RuneCountInString(c.Name) > 50 {
		return ErrCategoryNameTooLong
	}

	if utf8.RuneCountInString(c.Description) > 255 {
		return ErrDescriptionTooLong
	}

	return c.Type.Validate()
}
