package models

// Vote is keyed by (PostID, UserID); the existence of the row is the vote.
type Vote struct {
	PostID int64
	UserID int64
}
