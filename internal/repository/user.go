package repository

import (
	"context"

	"docshare/internal/model"
)

// UserRepository defines data access for user accounts.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user and returns the stored record including
	// the generated id and created_at.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByEmail returns the user with the given email, or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns the user with the given id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.User, error)
}
