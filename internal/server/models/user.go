// Package models holds the persisted row types shared by repositories and
// services.
package models

import "time"

// User is a registered account. Password always holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
