package models

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

// User is the owner of categories and transactions.
type User struct {
	DefaultModel
	Username     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex:idx_users_email;not null"`
	PasswordHash string `gorm:"not null"`
}

// BeforeSave trims and validates the user.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Username == "" || utf8.RuneCountInString(u.Username) > 50 {
		return ErrUsernameInvalid
	}

	if len(u.Email) > 50 {
		return ErrEmailInvalid
	}

	addr, err := mail.ParseAddress(u.Email)
	if err != nil || addr.Address != u.Email {
		return ErrEmailInvalid
	}

	return nil
}
