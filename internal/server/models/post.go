package models

import "time"

// Post is owned exclusively by the creating user; only the owner may update
// or delete it.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Published bool
	CreatedAt time.Time
	OwnerID   int64
	Owner     *User
}

// PostWithVotes pairs a post with the number of votes cast on it.
type PostWithVotes struct {
	Post  *Post
	Votes int64
}
