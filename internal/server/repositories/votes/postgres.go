package votes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"postboard/internal/common"
	"postboard/internal/dbx"
	"postboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, postID, userID int64) (*models.Vote, error) {
	query :=
		`SELECT post_id, user_id FROM votes
		 WHERE post_id = $1 AND user_id = $2
		 `

	vote := &models.Vote{}
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&vote.PostID, &vote.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vote, nil
}

// Create inserts the vote row. A unique violation on the composite primary
// key means a concurrent request inserted first; that is reported as
// common.ErrorAlreadyExists, not as a generic database failure.
func (r *PostgresRepository) Create(ctx context.Context, postID, userID int64) error {
	query :=
		`INSERT INTO votes (post_id, user_id)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, postID, userID int64) error {
	query :=
		`DELETE FROM votes
		 WHERE post_id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
