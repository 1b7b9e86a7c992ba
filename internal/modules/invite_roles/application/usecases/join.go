package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/application/ports"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// JoinOutcome is the terminal state reached while handling a member join.
type JoinOutcome int

const (
	// OutcomeError means an outbound call failed.
	OutcomeError JoinOutcome = iota
	// OutcomeIgnored means the join happened in a guild other than the target guild.
	OutcomeIgnored
	// OutcomeNoAttribution means no invite use count increased.
	OutcomeNoAttribution
	// OutcomeNoRoleMapping means the used invite has no role mapping.
	OutcomeNoRoleMapping
	// OutcomeRoleUnresolved means the mapped role no longer exists in the guild.
	OutcomeRoleUnresolved
	// OutcomeRoleGranted means the mapped role was added to the member.
	OutcomeRoleGranted
)

func (o JoinOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoAttribution:
		return "no_attribution"
	case OutcomeNoRoleMapping:
		return "no_role_mapping"
	case OutcomeRoleUnresolved:
		return "role_unresolved"
	case OutcomeRoleGranted:
		return "role_granted"
	default:
		return "error"
	}
}

// MemberJoinInput contains the input for the HandleMemberJoin use case.
type MemberJoinInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// MemberJoinOutput contains the result of the HandleMemberJoin use case.
type MemberJoinOutput struct {
	Outcome    JoinOutcome
	InviteCode string       // Empty unless an invite was attributed
	RoleID     snowflake.ID // 0 unless a role mapping was found
	RoleName   string       // Empty unless the role was resolved
}

// JoinService attributes member joins to invites and grants the mapped roles.
type JoinService struct {
	targetGuildID snowflake.ID
	snapshots     domain.SnapshotRepository
	invites       ports.InviteFetcher
	mappings      ports.RoleMappingStore
	roles         ports.RoleResolver
	granter       ports.RoleGranter
	locks         *guildLocks
}

// NewJoinService creates a new JoinService for the given target guild.
func NewJoinService(
	targetGuildID snowflake.ID,
	snapshots domain.SnapshotRepository,
	invites ports.InviteFetcher,
	mappings ports.RoleMappingStore,
	roles ports.RoleResolver,
	granter ports.RoleGranter,
) *JoinService {
	return &JoinService{
		targetGuildID: targetGuildID,
		snapshots:     snapshots,
		invites:       invites,
		mappings:      mappings,
		roles:         roles,
		granter:       granter,
		locks:         newGuildLocks(),
	}
}

// TargetGuildID returns the only guild this service handles.
func (j *JoinService) TargetGuildID() snowflake.ID {
	return j.targetGuildID
}

// PrimeCache fetches the guild's invites and stores them as the attribution baseline.
// Returns the number of cached invites.
func (j *JoinService) PrimeCache(ctx context.Context, guildID snowflake.ID) (int, error) {
	unlock := j.locks.lock(guildID)
	defer unlock()

	snapshot, err := j.invites.FetchInvites(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFetchInvites, err)
	}

	j.snapshots.Set(snapshot)
	return snapshot.Len(), nil
}

// HandleMemberJoin detects the invite used by a newly joined member and grants the
// role mapped to it. The returned error is non-nil for OutcomeError and
// OutcomeNoRoleMapping, and carries the cause.
func (j *JoinService) HandleMemberJoin(
	ctx context.Context,
	input MemberJoinInput,
) (MemberJoinOutput, error) {
	if input.GuildID != j.targetGuildID {
		return MemberJoinOutput{Outcome: OutcomeIgnored}, nil
	}

	used, found, err := j.attribute(ctx, input.GuildID)
	if err != nil {
		return MemberJoinOutput{Outcome: OutcomeError}, err
	}
	if !found {
		return MemberJoinOutput{Outcome: OutcomeNoAttribution}, nil
	}

	output := MemberJoinOutput{InviteCode: used.Code}

	mapping, err := j.mappings.FindByInviteCode(ctx, used.Code)
	if err != nil {
		output.Outcome = OutcomeNoRoleMapping
		if errors.Is(err, domain.ErrRoleMappingNotFound) {
			return output, err
		}
		return output, fmt.Errorf("%w: %w", ErrRoleLookup, err)
	}
	output.RoleID = mapping.RoleID

	roleName, ok := j.roles.ResolveRole(input.GuildID, mapping.RoleID)
	if !ok {
		output.Outcome = OutcomeRoleUnresolved
		return output, nil
	}
	output.RoleName = roleName

	if err := j.granter.GrantRole(ctx, input.GuildID, input.UserID, mapping.RoleID); err != nil {
		output.Outcome = OutcomeError
		return output, fmt.Errorf("%w: %w", ErrGrantRole, err)
	}

	output.Outcome = OutcomeRoleGranted
	return output, nil
}

// attribute fetches a fresh snapshot, compares it with the cached one and replaces the
// cache entry regardless of the result.
func (j *JoinService) attribute(
	ctx context.Context,
	guildID snowflake.ID,
) (domain.Invite, bool, error) {
	unlock := j.locks.lock(guildID)
	defer unlock()

	current, err := j.invites.FetchInvites(ctx, guildID)
	if err != nil {
		return domain.Invite{}, false, fmt.Errorf("%w: %w", ErrFetchInvites, err)
	}

	var previous *domain.Snapshot
	if cached, ok := j.snapshots.Get(guildID); ok {
		previous = &cached
	}

	used, found := domain.FindUsedInvite(previous, current)
	j.snapshots.Set(current)

	return used, found, nil
}
