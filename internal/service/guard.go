// Package service implements the operations on users, categories and
// transactions. Every operation on categories and transactions is scoped to
// the acting user.
package service

import (
	"context"

	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
)

// Authorize returns the resource with the ID if it is owned by owner.
//
// The lookup is a single query on ID and owner. A resource that does not exist
// and a resource owned by someone else are indistinguishable, both
// return ErrResourceNotFound.
func Authorize[R models.Category | models.Transaction](ctx context.Context, store ledger.Store, id, owner uuid.UUID) (R, error) {
	var resource R

	if err := RequireOwner(owner); err != nil {
		return resource, err
	}

	err := store.FindOwned(ctx, &resource, id, owner)
	return resource, err
}

// RequireOwner returns ErrUnauthenticated if no user is acting.
func RequireOwner(owner uuid.UUID) error {
	if owner == uuid.Nil {
		return models.ErrUnauthenticated
	}

	return nil
}
