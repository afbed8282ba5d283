package services

import (
	"context"
	"database/sql"

	"postboard/internal/dbx"
	"postboard/internal/server/models"
	"postboard/internal/server/repositories/posts"
	"postboard/internal/server/repositories/users"
	"postboard/internal/server/repositories/votes"
)

// --- shared fakes for the service tests ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byIDOut *models.User
	byIDErr error

	byEmailOut *models.User
	byEmailErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

type fakePostsRepo struct {
	createErr error

	byIDOut *models.Post
	byIDErr error

	withVotesOut *models.PostWithVotes
	withVotesErr error

	listOut []*models.PostWithVotes
	listErr error

	updateOut *models.Post
	updateErr error

	deleteErr error

	lastCreated *models.Post
	deletedID   int64
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	f.lastCreated = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 10
	return p, nil
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakePostsRepo) GetWithVotes(ctx context.Context, id int64) (*models.PostWithVotes, error) {
	if f.withVotesErr != nil {
		return nil, f.withVotesErr
	}
	return f.withVotesOut, nil
}

func (f *fakePostsRepo) List(ctx context.Context, limit, skip int64, search string) ([]*models.PostWithVotes, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakePostsRepo) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return p, nil
}

func (f *fakePostsRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeVotesRepo struct {
	getOut *models.Vote
	getErr error

	createErr error
	deleteErr error

	created bool
	deleted bool
}

func (f *fakeVotesRepo) Get(ctx context.Context, postID, userID int64) (*models.Vote, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeVotesRepo) Create(ctx context.Context, postID, userID int64) error {
	f.created = true
	return f.createErr
}

func (f *fakeVotesRepo) Delete(ctx context.Context, postID, userID int64) error {
	f.deleted = true
	return f.deleteErr
}

type fakeRepoManager struct {
	users users.Repository
	posts posts.Repository
	votes votes.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return f.users }

func (f *fakeRepoManager) Posts(db dbx.DBTX) posts.Repository { return f.posts }

func (f *fakeRepoManager) Votes(db dbx.DBTX) votes.Repository { return f.votes }
