package models

import (
	"encoding/json"
	"strings"
)

// TransactionType is the leg a transaction or category belongs to.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// ParseType parses a type token. Surrounding whitespace and case are ignored.
func ParseType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}

	return t, nil
}

// Validate returns ErrTypeInvalid for anything but INCOME and EXPENSE.
func (t TransactionType) Validate() error {
	if t != TypeIncome && t != TypeExpense {
		return ErrTypeInvalid
	}

	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (t *TransactionType) UnmarshalParam(p string) error {
	if p == "" {
		*t = ""
		return nil
	}

	parsed, err := ParseType(p)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// UnmarshalJSON parses the type with ParseType. An empty string or null
// leave the type unset.
func (t *TransactionType) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return t.UnmarshalParam(s)
}
