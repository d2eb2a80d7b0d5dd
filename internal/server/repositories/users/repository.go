// Package users defines persistence for forum accounts.
package users

import (
	"context"

	"github.com/ftprojects/forum/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	UpdateUsername(ctx context.Context, id string, username string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
