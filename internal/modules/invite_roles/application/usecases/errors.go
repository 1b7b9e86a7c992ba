package usecases

import (
	"errors"

	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// Errors returned by the invite role use cases.
var (
	// ErrFetchInvites is returned when the guild's invites could not be fetched.
	ErrFetchInvites = errors.New("failed to fetch invites")

	// ErrRoleLookup is returned when the role store query fails.
	ErrRoleLookup = errors.New("failed to look up role mapping")

	// ErrGrantRole is returned when the role could not be added to the member.
	ErrGrantRole = errors.New("failed to grant role")

	// ErrRoleMappingNotFound is returned when the used invite has no role mapping.
	ErrRoleMappingNotFound = domain.ErrRoleMappingNotFound
)
