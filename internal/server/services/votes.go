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

// Vote directions. The row's existence is the vote: DirUp creates it,
// DirDown removes it.
const (
	DirDown = 0
	DirUp   = 1
)

// VoteService implements the single-direction voting rules on posts.
type VoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVoteService(db *sql.DB, m repomanager.RepositoryManager) *VoteService {
	return &VoteService{db: db, repomanager: m}
}

// Cast applies a vote command for user on postID.
//
//   - The post must exist: common.ErrorNotFound otherwise.
//   - dir=DirUp with an existing vote, or dir=DirDown without one, yields
//     common.ErrorConflict.
//   - Two concurrent DirUp requests may both pass the existence check; the
//     composite primary key rejects the second insert and that lost race is
//     reported as common.ErrorConflict as well.
func (s *VoteService) Cast(ctx context.Context, user *models.User, postID int64, dir int) error {
	postRepo := s.repomanager.Posts(s.db)
	voteRepo := s.repomanager.Votes(s.db)

	if _, err := postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error loading post: %w", err)
	}

	_, err := voteRepo.Get(ctx, postID, user.ID)
	voteExists := err == nil
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error loading vote: %w", err)
	}

	if dir == DirUp {
		if voteExists {
			return common.ErrorConflict
		}
		if err := voteRepo.Create(ctx, postID, user.ID); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorConflict
			}
			return fmt.Errorf("error creating vote: %w", err)
		}
		return nil
	}

	if !voteExists {
		return common.ErrorConflict
	}
	if err := voteRepo.Delete(ctx, postID, user.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorConflict
		}
		return fmt.Errorf("error deleting vote: %w", err)
	}

	return nil
}
