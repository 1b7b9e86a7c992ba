package domain

import (
	"errors"

	"github.com/disgoorg/snowflake/v2"
)

// ErrRoleMappingNotFound is returned when no role is associated with an invite code.
var ErrRoleMappingNotFound = errors.New("role mapping not found")

// RoleMapping associates an invite code with the role granted to members who use it.
type RoleMapping struct {
	InviteCode string
	RoleID     snowflake.ID
}
