package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"postboard/internal/common"
	"postboard/internal/dbx"
	"postboard/internal/logging"
	"postboard/internal/server/auth"
	"postboard/internal/server/config"
	"postboard/internal/server/models"
	"postboard/internal/server/repositories/posts"
	"postboard/internal/server/repositories/users"
	"postboard/internal/server/repositories/votes"
	"postboard/internal/server/services"
)

// memStore is a tiny in-memory database standing in for postgres so the
// handlers can be exercised end to end over httptest.
type memStore struct {
	users    map[int64]*models.User
	posts    map[int64]*models.Post
	votes    map[[2]int64]bool
	nextUser int64
	nextPost int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*models.User{},
		posts:    map[int64]*models.Post{},
		votes:    map[[2]int64]bool{},
		nextUser: 1,
		nextPost: 1,
	}
}

func (m *memStore) voteCount(postID int64) int64 {
	var n int64
	for key, ok := range m.votes {
		if ok && key[0] == postID {
			n++
		}
	}
	return n
}

func (m *memStore) withVotes(p *models.Post) *models.PostWithVotes {
	cp := *p
	if owner, ok := m.users[p.OwnerID]; ok {
		cp.Owner = owner
	}
	return &models.PostWithVotes{Post: &cp, Votes: m.voteCount(p.ID)}
}

type memUsersRepo struct{ store *memStore }

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = r.store.nextUser
	r.store.nextUser++
	u.CreatedAt = time.Now()
	r.store.users[u.ID] = u
	return u, nil
}

func (r *memUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memPostsRepo struct{ store *memStore }

func (r *memPostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	p.ID = r.store.nextPost
	r.store.nextPost++
	p.CreatedAt = time.Now()
	r.store.posts[p.ID] = p
	return p, nil
}

func (r *memPostsRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, ok := r.store.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (r *memPostsRepo) GetWithVotes(ctx context.Context, id int64) (*models.PostWithVotes, error) {
	p, ok := r.store.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.store.withVotes(p), nil
}

func (r *memPostsRepo) List(ctx context.Context, limit, skip int64, search string) ([]*models.PostWithVotes, error) {
	ids := make([]int64, 0, len(r.store.posts))
	for id, p := range r.store.posts {
		if strings.Contains(p.Title, search) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := []*models.PostWithVotes{}
	for i, id := range ids {
		if int64(i) < skip {
			continue
		}
		if int64(len(result)) >= limit {
			break
		}
		result = append(result, r.store.withVotes(r.store.posts[id]))
	}
	return result, nil
}

func (r *memPostsRepo) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	existing, ok := r.store.posts[p.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	existing.Title = p.Title
	existing.Content = p.Content
	existing.Published = p.Published
	cp := *existing
	return &cp, nil
}

func (r *memPostsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.store.posts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.store.posts, id)
	for key := range r.store.votes {
		if key[0] == id {
			delete(r.store.votes, key)
		}
	}
	return nil
}

type memVotesRepo struct{ store *memStore }

func (r *memVotesRepo) Get(ctx context.Context, postID, userID int64) (*models.Vote, error) {
	if !r.store.votes[[2]int64{postID, userID}] {
		return nil, common.ErrorNotFound
	}
	return &models.Vote{PostID: postID, UserID: userID}, nil
}

func (r *memVotesRepo) Create(ctx context.Context, postID, userID int64) error {
	key := [2]int64{postID, userID}
	if r.store.votes[key] {
		return common.ErrorAlreadyExists
	}
	r.store.votes[key] = true
	return nil
}

func (r *memVotesRepo) Delete(ctx context.Context, postID, userID int64) error {
	key := [2]int64{postID, userID}
	if !r.store.votes[key] {
		return common.ErrorNotFound
	}
	delete(r.store.votes, key)
	return nil
}

type memRepoManager struct{ store *memStore }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *memRepoManager) Users(db dbx.DBTX) users.Repository { return &memUsersRepo{store: m.store} }

func (m *memRepoManager) Posts(db dbx.DBTX) posts.Repository { return &memPostsRepo{store: m.store} }

func (m *memRepoManager) Votes(db dbx.DBTX) votes.Repository { return &memVotesRepo{store: m.store} }

const testSecret = "test-secret"

// newTestServer wires real services over the in-memory store and returns the
// routed handler ready for httptest.
func newTestServer(t *testing.T) (*memStore, http.Handler) {
	t.Helper()

	store := newMemStore()
	rm := &memRepoManager{store: store}
	cfg := &config.Config{
		SecretKey:                   testSecret,
		Algorithm:                   "HS256",
		AccessTokenValidityDuration: time.Hour,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	us := services.NewUserService(nil, rm, cfg)
	ps := services.NewPostService(nil, rm)
	vs := services.NewVoteService(nil, rm)

	s := NewServer(":0", logger, us, ps, vs)
	return store, s.routes()
}

// seedUser inserts a user directly into the store and returns it along with a
// valid bearer token.
func seedUser(t *testing.T, store *memStore, email, password string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	user := &models.User{ID: store.nextUser, Email: email, Password: hash, CreatedAt: time.Now()}
	store.users[user.ID] = user
	store.nextUser++

	token, err := auth.GenerateToken(user.ID, []byte(testSecret), "HS256", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	return user, token
}

// seedPost inserts a post directly into the store.
func seedPost(t *testing.T, store *memStore, title, content string, ownerID int64) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:        store.nextPost,
		Title:     title,
		Content:   content,
		Published: true,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	}
	store.posts[post.ID] = post
	store.nextPost++
	return post
}
