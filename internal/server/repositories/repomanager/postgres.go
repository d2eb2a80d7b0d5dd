package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ftprojects/forum/internal/server/migrations"
	"github.com/ftprojects/forum/internal/server/repositories/comments"
	"github.com/ftprojects/forum/internal/server/repositories/threads"
	"github.com/ftprojects/forum/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	threads  threads.Repository
	comments comments.Repository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		threads:  threads.NewPostgresRepository(db),
		comments: comments.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }

func (m *PostgresRepositoryManager) Users() users.Repository       { return m.users }
func (m *PostgresRepositoryManager) Threads() threads.Repository   { return m.threads }
func (m *PostgresRepositoryManager) Comments() comments.Repository { return m.comments }
