// Package repomanager bundles the repositories behind one constructor with a
// defined lifecycle: open at process start, closed at shutdown.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/filehub/internal/server/repositories/files"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Sessions() sessions.Repository
	Files() files.Repository
}
