package auth

import (
	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/models"
)

// Owned is any resource that belongs to a user. Ownership is defined as
// username equality between the resource's owner and the caller, and
// nothing else.
type Owned interface {
	Owner() string
}

// GuardOwner checks that the user owns the resource. Applied identically
// to every owned resource type so the policy cannot drift between them.
func GuardOwner(user *models.User, resource Owned) error {
	if resource.Owner() != user.Username {
		return common.ErrNotOwner
	}
	return nil
}

// RequireRole checks that the user holds the given role.
func RequireRole(user *models.User, role models.Role) error {
	if user.Role != role {
		return common.ErrInsufficientRole
	}
	return nil
}
