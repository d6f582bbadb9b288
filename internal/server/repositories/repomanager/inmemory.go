package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/filehub/internal/server/repositories/files"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	users    users.Repository
	sessions sessions.Repository
	files    files.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *InMemoryRepositoryManager) Files() files.Repository {
	return m.files
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
		files:    files.NewInMemoryRepository(),
	}
}
