package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (title, content, published, owner_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Published, post.OwnerID).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query :=
		`SELECT id, title, content, published, created_at, owner_id FROM posts
		 WHERE id = $1
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// GetWithVotes returns one post together with its owner and vote count.
// Zero-vote posts come back with a count of 0 via the left join.
func (r *PostgresRepository) GetWithVotes(ctx context.Context, id int64) (*models.PostWithVotes, error) {
	query :=
		`SELECT p.id, p.title, p.content, p.published, p.created_at, p.owner_id,
		        u.email, u.created_at, COUNT(v.post_id)
		 FROM posts p
		 JOIN users u ON u.id = p.owner_id
		 LEFT JOIN votes v ON v.post_id = p.id
		 WHERE p.id = $1
		 GROUP BY p.id, u.id
		 `

	row := r.db.QueryRowContext(ctx, query, id)
	pv, err := scanPostWithVotes(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pv, nil
}

// List returns posts whose title contains search (case-sensitive; the empty
// string matches everything), each with its owner and vote count, ordered by
// id ascending and paginated with limit/skip.
func (r *PostgresRepository) List(ctx context.Context, limit, skip int64, search string) ([]*models.PostWithVotes, error) {
	query :=
		`SELECT p.id, p.title, p.content, p.published, p.created_at, p.owner_id,
		        u.email, u.created_at, COUNT(v.post_id)
		 FROM posts p
		 JOIN users u ON u.id = p.owner_id
		 LEFT JOIN votes v ON v.post_id = p.id
		 WHERE p.title LIKE '%' || $1 || '%'
		 GROUP BY p.id, u.id
		 ORDER BY p.id
		 LIMIT $2 OFFSET $3
		 `

	rows, err := r.db.QueryContext(ctx, query, search, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.PostWithVotes{}
	for rows.Next() {
		pv, err := scanPostWithVotes(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update performs a full replace of title/content/published by id.
func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`UPDATE posts SET title = $1, content = $2, published = $3
		 WHERE id = $4
		 RETURNING id, title, content, published, created_at, owner_id
		 `

	updated := &models.Post{}
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Published, post.ID).Scan(
		&updated.ID, &updated.Title, &updated.Content, &updated.Published, &updated.CreatedAt, &updated.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM posts
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
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

// scanPostWithVotes scans the shared projection of the vote-counting queries.
func scanPostWithVotes(scan func(dest ...any) error) (*models.PostWithVotes, error) {
	post := &models.Post{Owner: &models.User{}}
	var votes int64

	err := scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID,
		&post.Owner.Email, &post.Owner.CreatedAt, &votes)
	if err != nil {
		return nil, err
	}

	post.Owner.ID = post.OwnerID
	return &models.PostWithVotes{Post: post, Votes: votes}, nil
}
