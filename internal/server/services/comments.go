package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/models"
	"github.com/ftprojects/forum/internal/server/repositories/comments"
)

// CommentService handles comment CRUD against open threads.
type CommentService struct {
	comments comments.Repository
	threads  *ThreadService
}

func NewCommentService(repo comments.Repository, threads *ThreadService) *CommentService {
	return &CommentService{comments: repo, threads: threads}
}

func (s *CommentService) Create(ctx context.Context, threadID, content string) error {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	thread, err := s.threads.Get(ctx, threadID)
	if err != nil {
		return err
	}
	if thread.Closed {
		return common.ErrThreadClosed
	}
	if err := validateText(content); err != nil {
		return err
	}
	return s.comments.Create(ctx, &models.Comment{
		ID:          uuid.NewString(),
		ThreadID:    thread.ID,
		Content:     content,
		PublishedAt: time.Now(),
		OwnerID:     user.ID,
	})
}

func (s *CommentService) ForThread(ctx context.Context, threadID string) ([]*models.Comment, error) {
	thread, err := s.threads.Get(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return s.comments.FindByThread(ctx, thread.ID)
}

func (s *CommentService) UpdateContent(ctx context.Context, id, content string) error {
	comment, err := s.ownedComment(ctx, id)
	if err != nil {
		return err
	}
	if err := validateText(content); err != nil {
		return err
	}
	return s.comments.UpdateContent(ctx, comment.ID, content)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	comment, err := s.ownedComment(ctx, id)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment.ID)
}

func (s *CommentService) ownedComment(ctx context.Context, id string) (*models.Comment, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.GuardOwner(user, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
