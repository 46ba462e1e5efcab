package ports

import (
	"context"

	"github.com/Vovarama1992/vidbrief/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	// GetUserByEmail returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}
