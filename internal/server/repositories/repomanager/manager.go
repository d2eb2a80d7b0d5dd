// Package repomanager wires repositories to their backing storage.
package repomanager

import (
	"context"

	"github.com/ftprojects/forum/internal/server/repositories/comments"
	"github.com/ftprojects/forum/internal/server/repositories/threads"
	"github.com/ftprojects/forum/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Close() error
	Users() users.Repository
	Threads() threads.Repository
	Comments() comments.Repository
}
