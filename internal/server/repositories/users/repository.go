package users

import (
	"context"

	"postboard/internal/server/models"
)

// Repository is the typed CRUD surface for user rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
