// Package threads defines persistence for forum threads.
package threads

import (
	"context"

	"github.com/ftprojects/forum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, thread *models.Thread) error
	FindByID(ctx context.Context, id string) (*models.Thread, error)
	// List returns a page of threads ordered by publication time.
	List(ctx context.Context, offset, limit int, descending bool) ([]*models.Thread, error)
	UpdateContent(ctx context.Context, id string, content string) error
	UpdateClosed(ctx context.Context, id string, closed bool) error
	Delete(ctx context.Context, id string) error
}
