// Package comments defines persistence for thread comments.
package comments

import (
	"context"

	"github.com/ftprojects/forum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	// FindByThread returns the thread's comments ordered by publication time.
	FindByThread(ctx context.Context, threadID string) ([]*models.Comment, error)
	UpdateContent(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) error
}
