package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// RoleResolver defines the interface for resolving a role against a guild's known roles.
type RoleResolver interface {
	// ResolveRole returns the role's name, or false if the guild has no such role.
	ResolveRole(guildID, roleID snowflake.ID) (name string, ok bool)
}

// RoleGranter defines the interface for assigning roles to guild members.
type RoleGranter interface {
	// GrantRole adds the role to the member.
	GrantRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
}
