package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/models"
	"github.com/ftprojects/forum/internal/server/repositories/threads"
)

const minTextLength = 5

// ThreadService handles thread CRUD. Mutations on existing threads pass
// through the ownership guard before any validation or write.
type ThreadService struct {
	threads threads.Repository
}

func NewThreadService(repo threads.Repository) *ThreadService {
	return &ThreadService{threads: repo}
}

func (s *ThreadService) Create(ctx context.Context, title, content string) error {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateText(content); err != nil {
		return err
	}
	return s.threads.Create(ctx, &models.Thread{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		PublishedAt: time.Now(),
		Closed:      false,
		OwnerID:     user.ID,
	})
}

func (s *ThreadService) List(ctx context.Context, page, size int, descending bool) ([]*models.Thread, error) {
	if page < 0 {
		return nil, common.ErrInvalidPage
	}
	if size <= 0 {
		return nil, common.ErrInvalidSize
	}
	// The offset is page*size; a page large enough to overflow it can
	// never address a real row.
	if page > math.MaxInt/size {
		return nil, common.ErrInvalidPage
	}
	return s.threads.List(ctx, page*size, size, descending)
}

// Get returns the thread or ErrorNotFound. Used by the comment service to
// resolve a comment's target.
func (s *ThreadService) Get(ctx context.Context, id string) (*models.Thread, error) {
	return s.threads.FindByID(ctx, id)
}

func (s *ThreadService) UpdateContent(ctx context.Context, id, content string) error {
	thread, err := s.ownedThread(ctx, id)
	if err != nil {
		return err
	}
	if err := validateText(content); err != nil {
		return err
	}
	return s.threads.UpdateContent(ctx, thread.ID, content)
}

func (s *ThreadService) UpdateClosed(ctx context.Context, id string, closed bool) error {
	thread, err := s.ownedThread(ctx, id)
	if err != nil {
		return err
	}
	return s.threads.UpdateClosed(ctx, thread.ID, closed)
}

func (s *ThreadService) Delete(ctx context.Context, id string) error {
	thread, err := s.ownedThread(ctx, id)
	if err != nil {
		return err
	}
	return s.threads.Delete(ctx, thread.ID)
}

// ownedThread loads the target and applies the ownership guard, so every
// mutation follows the identical load-guard-write sequence.
func (s *ThreadService) ownedThread(ctx context.Context, id string) (*models.Thread, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	thread, err := s.threads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.GuardOwner(user, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func validateTitle(title string) error {
	if len(title) < minTextLength {
		return common.ErrInvalidTitle
	}
	return nil
}

func validateText(content string) error {
	if len(content) < minTextLength {
		return common.ErrInvalidContent
	}
	return nil
}
