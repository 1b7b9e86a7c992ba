package ports

import (
	"context"

	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// RoleMappingStore defines the interface for looking up the role tied to an invite.
type RoleMappingStore interface {
	// FindByInviteCode returns the mapping for the exact invite code.
	// Returns domain.ErrRoleMappingNotFound if no mapping exists.
	FindByInviteCode(ctx context.Context, code string) (domain.RoleMapping, error)
}
