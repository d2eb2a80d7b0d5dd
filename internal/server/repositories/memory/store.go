// Package memory provides map-backed repository implementations sharing a
// single store, used by service and HTTP tests and for running the server
// without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/models"
)

// Store holds all aggregates behind one mutex so that cross-aggregate
// reads (owner usernames, cascade deletes) stay consistent.
type Store struct {
	mu       sync.Mutex
	users    map[string]*models.User
	threads  map[string]*models.Thread
	comments map[string]*models.Comment
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		threads:  make(map[string]*models.Thread),
		comments: make(map[string]*models.Comment),
	}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (s *Store) cloneThread(t *models.Thread) *models.Thread {
	c := *t
	if owner, ok := s.users[t.OwnerID]; ok {
		c.OwnerUsername = owner.Username
	}
	return &c
}

func (s *Store) cloneComment(cm *models.Comment) *models.Comment {
	c := *cm
	if owner, ok := s.users[cm.OwnerID]; ok {
		c.OwnerUsername = owner.Username
	}
	return &c
}

// UserRepository is the in-memory users.Repository.
type UserRepository struct{ store *Store }

func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UserRepository) FindAll(_ context.Context) ([]*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*models.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		result = append(result, cloneUser(u))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

func (r *UserRepository) UpdateUsername(_ context.Context, id string, username string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Username = username
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.store.users, id)
	// Cascade, matching the schema's foreign keys: the user's threads go,
	// taking every comment on them, and so do the user's own comments
	// elsewhere.
	for tid, t := range r.store.threads {
		if t.OwnerID != id {
			continue
		}
		delete(r.store.threads, tid)
		for cid, c := range r.store.comments {
			if c.ThreadID == tid {
				delete(r.store.comments, cid)
			}
		}
	}
	for cid, c := range r.store.comments {
		if c.OwnerID == id {
			delete(r.store.comments, cid)
		}
	}
	return nil
}

// ThreadRepository is the in-memory threads.Repository.
type ThreadRepository struct{ store *Store }

func (s *Store) Threads() *ThreadRepository { return &ThreadRepository{store: s} }

func (r *ThreadRepository) Create(_ context.Context, thread *models.Thread) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *thread
	r.store.threads[thread.ID] = &c
	return nil
}

func (r *ThreadRepository) FindByID(_ context.Context, id string) (*models.Thread, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.threads[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.store.cloneThread(t), nil
}

func (r *ThreadRepository) List(_ context.Context, offset, limit int, descending bool) ([]*models.Thread, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*models.Thread, 0, len(r.store.threads))
	for _, t := range r.store.threads {
		all = append(all, r.store.cloneThread(t))
	}
	sort.Slice(all, func(i, j int) bool {
		if descending {
			return all[i].PublishedAt.After(all[j].PublishedAt)
		}
		return all[i].PublishedAt.Before(all[j].PublishedAt)
	})
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *ThreadRepository) UpdateContent(_ context.Context, id string, content string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.threads[id]
	if !ok {
		return common.ErrorNotFound
	}
	t.Content = content
	return nil
}

func (r *ThreadRepository) UpdateClosed(_ context.Context, id string, closed bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.threads[id]
	if !ok {
		return common.ErrorNotFound
	}
	t.Closed = closed
	return nil
}

func (r *ThreadRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.threads[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.store.threads, id)
	for cid, c := range r.store.comments {
		if c.ThreadID == id {
			delete(r.store.comments, cid)
		}
	}
	return nil
}

// CommentRepository is the in-memory comments.Repository.
type CommentRepository struct{ store *Store }

func (s *Store) Comments() *CommentRepository { return &CommentRepository{store: s} }

func (r *CommentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *comment
	r.store.comments[comment.ID] = &c
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id string) (*models.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.comments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.store.cloneComment(c), nil
}

func (r *CommentRepository) FindByThread(_ context.Context, threadID string) ([]*models.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*models.Comment
	for _, c := range r.store.comments {
		if c.ThreadID == threadID {
			result = append(result, r.store.cloneComment(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PublishedAt.Before(result[j].PublishedAt) })
	return result, nil
}

func (r *CommentRepository) UpdateContent(_ context.Context, id string, content string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.comments[id]
	if !ok {
		return common.ErrorNotFound
	}
	c.Content = content
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.comments[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.store.comments, id)
	return nil
}
