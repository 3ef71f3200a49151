package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Credentials of the user created by Seed.
const (
	DemoUsername = "john_doe"
	DemoEmail    = "john@example.com"
	DemoPassword = "password123"
)

type demoCategory struct {
	name        string
	typ         models.TransactionType
	description string
}

type demoTransaction struct {
	category    string
	day         int
	amount      int64
	description string
}

var demoCategories = []demoCategory{
	{"Salary", models.TypeIncome, "Monthly salary"},
	{"Freelance", models.TypeIncome, "Side projects"},
	{"Groceries", models.TypeExpense, "Food & supermarkets"},
	{"Rent", models.TypeExpense, "Monthly rent"},
	{"Transport", models.TypeExpense, "Public transport & fuel"},
	{"Entertainment", models.TypeExpense, "Movies, games, fun"},
}

// demoMonth is booked for each of the demo months. An empty description
// is replaced by the salary text for the month.
var demoMonth = []demoTransaction{
	{"Salary", 1, 3000, ""},
	{"Freelance", 15, 800, "Freelance work"},
	{"Rent", 5, 1200, "Apartment rent"},
	{"Groceries", 10, 350, "Groceries"},
	{"Transport", 18, 120, "Transport"},
	{"Entertainment", 22, 200, "Entertainment"},
}

// DemoMonths is the number of months before the current one that Seed books
// transactions for.
const DemoMonths = 4

// Seed creates the demo user with categories and transactions for the
// DemoMonths months before the month of now.
//
// Everything is created in one database transaction. When the demo user
// already exists, nothing is created and the returned user is empty.
func Seed(ctx context.Context, store ledger.Store, now func() time.Time) (models.User, error) {
	var user models.User

	err := store.Atomic(ctx, func(store ledger.Store) error {
		var err error
		user, err = NewUsers(store).Register(ctx, DemoUsername, DemoEmail, DemoPassword)
		if err != nil {
			return err
		}

		categories := NewCategories(store)
		byName := make(map[string]models.Category, len(demoCategories))
		for _, c := range demoCategories {
			category, err := categories.Create(ctx, user.ID, models.Category{Name: c.name, Type: c.typ, Description: c.description})
			if err != nil {
				return err
			}
			byName[c.name] = category
		}

		transactions := NewTransactions(store, now)
		current := now()
		for i := 1; i <= DemoMonths; i++ {
			first := time.Date(current.Year(), current.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
			month := types.NewMonth(first.Year(), first.Month())

			for _, t := range demoMonth {
				category := byName[t.category]
				description := t.description
				if description == "" {
					description = fmt.Sprintf("Salary for %s", month)
				}

				_, err := transactions.Create(ctx, user.ID, models.Transaction{
					CategoryID:  &category.ID,
					Type:        category.Type,
					Amount:      decimal.NewFromInt(t.amount),
					Date:        types.NewDate(first.Year(), first.Month(), t.day),
					Description: description,
				})
				if err != nil {
					return err
				}
			}
		}

		return nil
	})

	if errors.Is(err, models.ErrEmailInUse) {
		return models.User{}, nil
	}

	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
