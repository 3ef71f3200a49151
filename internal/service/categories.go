package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
)

type Categories struct {
	store ledger.Store
}

func NewCategories(store ledger.Store) *Categories {
	return &Categories{store: store}
}

// Create stores a new category owned by owner.
func (s *Categories) Create(ctx context.Context, owner uuid.UUID, category models.Category) (models.Category, error) {
	if err := RequireOwner(owner); err != nil {
		return models.Category{}, err
	}

	category.ID = uuid.Nil
	category.UserID = owner

	err := s.store.CreateCategory(ctx, &category)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *Categories) Get(ctx context.Context, owner, id uuid.UUID) (models.Category, error) {
	return Authorize[models.Category](ctx, s.store, id, owner)
}

func (s *Categories) List(ctx context.Context, owner uuid.UUID, filter ledger.CategoryFilter) ([]models.Category, error) {
	if err := RequireOwner(owner); err != nil {
		return nil, err
	}

	return s.store.ListCategories(ctx, owner, filter)
}

// Update applies patch to the category and saves it.
//
// The category is fetched and saved in the same database transaction.
// ID and owner cannot be changed by patch.
func (s *Categories) Update(ctx context.Context, owner, id uuid.UUID, patch func(*models.Category)) (models.Category, error) {
	var category models.Category

	err := s.store.Atomic(ctx, func(store ledger.Store) error {
		var err error
		category, err = Authorize[models.Category](ctx, store, id, owner)
		if err != nil {
			return err
		}

		patch(&category)
		category.ID = id
		category.UserID = owner

		return store.SaveCategory(ctx, &category)
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// Delete removes the category. Its transactions are kept without category.
func (s *Categories) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.store.Atomic(ctx, func(store ledger.Store) error {
		category, err := Authorize[models.Category](ctx, store, id, owner)
		if err != nil {
			return err
		}

		return store.DeleteCategory(ctx, category)
	})
}
