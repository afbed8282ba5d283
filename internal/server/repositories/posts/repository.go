package posts

import (
	"context"

	"postboard/internal/server/models"
)

// Repository is the typed CRUD surface for post rows. Read operations that
// feed API responses carry the vote count and the owner row; GetByID is the
// lean variant used for ownership checks.
type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetWithVotes(ctx context.Context, id int64) (*models.PostWithVotes, error)
	List(ctx context.Context, limit, skip int64, search string) ([]*models.PostWithVotes, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}
