package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Users struct {
	store ledger.Store
	cost  int
}

func NewUsers(store ledger.Store) *Users {
	return &Users{store: store, cost: bcrypt.DefaultCost}
}

// Register creates a new user with a hashed password.
//
// Email addresses are unique. Registering an address that is already in use
// returns ErrEmailInUse.
func (s *Users) Register(ctx context.Context, username, email, password string) (models.User, error) {
	length := utf8.RuneCountInString(password)
	// bcrypt only accepts up to 72 bytes
	if length < 8 || length > 50 || len(password) > 72 {
		return models.User{}, models.ErrPasswordLength
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", models.ErrGeneral, err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	err = s.store.CreateUser(ctx, &user)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Get returns the user with the ID.
func (s *Users) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	if err := RequireOwner(id); err != nil {
		return models.User{}, err
	}

	return s.store.FindUser(ctx, id)
}
