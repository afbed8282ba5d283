package votes

import (
	"context"

	"postboard/internal/server/models"
)

// Repository manages vote rows. The (post_id, user_id) composite primary key
// at the database level is the final arbiter of the at-most-one-vote
// invariant; Create reports a lost insert race as common.ErrorAlreadyExists.
type Repository interface {
	Get(ctx context.Context, postID, userID int64) (*models.Vote, error)
	Create(ctx context.Context, postID, userID int64) error
	Delete(ctx context.Context, postID, userID int64) error
}
