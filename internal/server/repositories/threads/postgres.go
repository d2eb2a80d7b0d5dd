package threads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/dbx"
	"github.com/ftprojects/forum/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, thread *models.Thread) error {
	query :=
		`INSERT INTO threads (id, title, content, published_at, closed, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		thread.ID, thread.Title, thread.Content, thread.PublishedAt, thread.Closed, thread.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Thread, error) {
	query :=
		`SELECT t.id, t.title, t.content, t.published_at, t.closed, t.user_id, u.username
		 FROM threads t JOIN users u ON u.id = t.user_id
		 WHERE t.id = $1
		 `

	thread := &models.Thread{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&thread.ID, &thread.Title, &thread.Content, &thread.PublishedAt,
			&thread.Closed, &thread.OwnerID, &thread.OwnerUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return thread, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int, descending bool) ([]*models.Thread, error) {
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	query := fmt.Sprintf(
		`SELECT t.id, t.title, t.content, t.published_at, t.closed, t.user_id, u.username
		 FROM threads t JOIN users u ON u.id = t.user_id
		 ORDER BY t.published_at %s
		 LIMIT $1 OFFSET $2
		 `, direction)

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Thread
	for rows.Next() {
		thread := &models.Thread{}
		if err := rows.Scan(&thread.ID, &thread.Title, &thread.Content, &thread.PublishedAt,
			&thread.Closed, &thread.OwnerID, &thread.OwnerUsername); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id string, content string) error {
	return r.exec(ctx, `UPDATE threads SET content = $2 WHERE id = $1`, id, content)
}

func (r *PostgresRepository) UpdateClosed(ctx context.Context, id string, closed bool) error {
	return r.exec(ctx, `UPDATE threads SET closed = $2 WHERE id = $1`, id, closed)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM threads WHERE id = $1`, id)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
