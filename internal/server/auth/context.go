package auth

import (
	"context"
	"sync"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/models"
)

type ctxKey string

const bindingKey ctxKey = "authBinding"

// binding ties exactly one (user, token) pair to one in-flight request.
// It is created at gate entry and released on every exit path; after
// release the pair is unreachable even through a leaked context.
type binding struct {
	mu    sync.Mutex
	user  *models.User
	token string
}

func (b *binding) get() (*models.User, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.user, b.token
}

func (b *binding) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user = nil
	b.token = ""
}

// Bind attaches the authenticated (user, token) pair to the request
// context and returns the release function. The caller must invoke
// release unconditionally when request handling completes, success or
// failure.
func Bind(ctx context.Context, user *models.User, token string) (context.Context, func()) {
	b := &binding{user: user, token: token}
	return context.WithValue(ctx, bindingKey, b), b.clear
}

// CurrentUser returns the principal making the current request. It fails
// with ErrNoAuthContext when no authentication was bound, which is
// unreachable on correctly gated routes and indicates a wiring bug.
func CurrentUser(ctx context.Context) (*models.User, error) {
	b, ok := ctx.Value(bindingKey).(*binding)
	if !ok {
		return nil, common.ErrNoAuthContext
	}
	user, _ := b.get()
	if user == nil {
		return nil, common.ErrNoAuthContext
	}
	return user, nil
}

// BoundToken returns the bearer token of the current request.
func BoundToken(ctx context.Context) (string, error) {
	b, ok := ctx.Value(bindingKey).(*binding)
	if !ok {
		return "", common.ErrNoAuthContext
	}
	_, token := b.get()
	if token == "" {
		return "", common.ErrNoAuthContext
	}
	return token, nil
}
