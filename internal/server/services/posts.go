package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"postboard/internal/common"
	"postboard/internal/server/models"
	"postboard/internal/server/repositories/repomanager"
)

// PostService implements the post CRUD rules: reads are open to any
// authenticated user, writes are restricted to the owner.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// List returns up to limit posts matching the title substring filter,
// skipping the first skip rows, ordered by id ascending.
func (s *PostService) List(ctx context.Context, limit, skip int64, search string) ([]*models.PostWithVotes, error) {
	repo := s.repomanager.Posts(s.db)

	result, err := repo.List(ctx, limit, skip, search)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return result, nil
}

// Get returns one post with its vote count, regardless of ownership or
// published status.
func (s *PostService) Get(ctx context.Context, id int64) (*models.PostWithVotes, error) {
	repo := s.repomanager.Posts(s.db)

	pv, err := repo.GetWithVotes(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading post: %w", err)
	}

	return pv, nil
}

// Create stores a new post owned by owner. The owner is taken from the
// authenticated caller, never from the request body.
func (s *PostService) Create(ctx context.Context, owner *models.User, title, content string, published bool) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.Create(ctx, &models.Post{
		Title:     title,
		Content:   content,
		Published: published,
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	post.Owner = owner
	return post, nil
}

// Update fully replaces title/content/published. The post must exist
// (common.ErrorNotFound) and caller must be the owner (common.ErrorForbidden).
func (s *PostService) Update(ctx context.Context, caller *models.User, id int64, title, content string, published bool) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading post: %w", err)
	}

	if existing.OwnerID != caller.ID {
		return nil, common.ErrorForbidden
	}

	updated, err := repo.Update(ctx, &models.Post{ID: id, Title: title, Content: content, Published: published})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	updated.Owner = caller
	return updated, nil
}

// Delete removes the post. Same existence and ownership rules as Update.
func (s *PostService) Delete(ctx context.Context, caller *models.User, id int64) error {
	repo := s.repomanager.Posts(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading post: %w", err)
	}

	if existing.OwnerID != caller.ID {
		return common.ErrorForbidden
	}

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}
