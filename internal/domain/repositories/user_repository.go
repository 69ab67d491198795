package repositories

import (
	"context"

	"inventory-service/internal/domain/entities"
)

type UserRepository interface {
	// Create fails with domain.ErrEmailAlreadyExists when the email is
	// already registered.
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
