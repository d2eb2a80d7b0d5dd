package httpapi

import (
	"time"

	"github.com/ftprojects/forum/internal/server/models"
)

// commentTimeLayout renders comment timestamps in the viewer's timezone.
const commentTimeLayout = "2006-01-02 15:04:05"

type ErrorResponse struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type CreateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ThreadResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

type CreateCommentRequest struct {
	ThreadID string `json:"thread_id"`
	Content  string `json:"content"`
}

type CommentResponse struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	PublishedAt string `json:"published_at"`
}

func toThreadResponse(t *models.Thread, loc *time.Location) ThreadResponse {
	return ThreadResponse{
		ID:          t.ID,
		Title:       t.Title,
		Content:     t.Content,
		PublishedAt: t.PublishedAt.In(loc),
	}
}

func toCommentResponse(c *models.Comment, loc *time.Location) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		PublishedAt: c.PublishedAt.In(loc).Format(commentTimeLayout),
	}
}
