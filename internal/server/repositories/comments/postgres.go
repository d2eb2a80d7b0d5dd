package comments

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

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) error {
	query :=
		`INSERT INTO comments (id, thread_id, content, published_at, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ThreadID, comment.Content, comment.PublishedAt, comment.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	query :=
		`SELECT c.id, c.thread_id, c.content, c.published_at, c.user_id, u.username
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1
		 `

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ThreadID, &comment.Content, &comment.PublishedAt,
			&comment.OwnerID, &comment.OwnerUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return comment, nil
}

func (r *PostgresRepository) FindByThread(ctx context.Context, threadID string) ([]*models.Comment, error) {
	query :=
		`SELECT c.id, c.thread_id, c.content, c.published_at, c.user_id, u.username
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.thread_id = $1
		 ORDER BY c.published_at
		 `

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.ThreadID, &comment.Content, &comment.PublishedAt,
			&comment.OwnerID, &comment.OwnerUsername); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id string, content string) error {
	return r.exec(ctx, `UPDATE comments SET content = $2 WHERE id = $1`, id, content)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
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
