package repomanager

import (
	"context"

	"github.com/ftprojects/forum/internal/server/repositories/comments"
	"github.com/ftprojects/forum/internal/server/repositories/memory"
	"github.com/ftprojects/forum/internal/server/repositories/threads"
	"github.com/ftprojects/forum/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs every repository with one shared
// in-process store. Used in tests and for database-less runs.
type InMemoryRepositoryManager struct {
	store *memory.Store
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{store: memory.NewStore()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Close() error                            { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository       { return m.store.Users() }
func (m *InMemoryRepositoryManager) Threads() threads.Repository   { return m.store.Threads() }
func (m *InMemoryRepositoryManager) Comments() comments.Repository { return m.store.Comments() }
