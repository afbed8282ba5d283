// Package repomanager bundles the repository factories behind one interface
// so services can be wired against a single dependency (and tests can swap in
// fakes).
package repomanager

import (
	"context"
	"database/sql"

	"postboard/internal/dbx"
	"postboard/internal/server/repositories/posts"
	"postboard/internal/server/repositories/users"
	"postboard/internal/server/repositories/votes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Votes(db dbx.DBTX) votes.Repository
}
