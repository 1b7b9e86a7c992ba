package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/application/ports"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// Ensure the Discord adapters implement their ports.
var (
	_ ports.InviteFetcher = (*DiscordInviteFetcher)(nil)
	_ ports.RoleResolver  = (*DiscordRoleResolver)(nil)
	_ ports.RoleGranter   = (*DiscordRoleGranter)(nil)
)

// inviteLister is the part of *discordgo.Session used to list invites.
type inviteLister interface {
	GuildInvites(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Invite, error)
}

// memberRoleAdder is the part of *discordgo.Session used to grant roles.
type memberRoleAdder interface {
	GuildMemberRoleAdd(
		guildID, userID, roleID string,
		options ...discordgo.RequestOption,
	) error
}

// DiscordInviteFetcher implements ports.InviteFetcher using the Discord REST API.
type DiscordInviteFetcher struct {
	session inviteLister
}

// NewDiscordInviteFetcher creates a new DiscordInviteFetcher.
func NewDiscordInviteFetcher(session *discordgo.Session) *DiscordInviteFetcher {
	return &DiscordInviteFetcher{session: session}
}

// FetchInvites returns the guild's active invites in the order Discord lists them.
func (f *DiscordInviteFetcher) FetchInvites(
	ctx context.Context,
	guildID snowflake.ID,
) (domain.Snapshot, error) {
	invites, err := f.session.GuildInvites(guildID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to list guild invites: %w", err)
	}

	return toSnapshot(guildID, invites), nil
}

// toSnapshot converts Discord invites to a domain Snapshot.
func toSnapshot(guildID snowflake.ID, invites []*discordgo.Invite) domain.Snapshot {
	converted := make([]domain.Invite, 0, len(invites))
	for _, inv := range invites {
		if inv == nil || inv.Code == "" {
			continue
		}
		converted = append(converted, domain.Invite{
			Code: inv.Code,
			Uses: inv.Uses,
		})
	}
	return domain.NewSnapshot(guildID, converted...)
}

// DiscordRoleResolver implements ports.RoleResolver using the session's state cache,
// which holds the roles Discord reported for each guild.
type DiscordRoleResolver struct {
	state *discordgo.State
}

// NewDiscordRoleResolver creates a new DiscordRoleResolver.
func NewDiscordRoleResolver(state *discordgo.State) *DiscordRoleResolver {
	return &DiscordRoleResolver{state: state}
}

// ResolveRole returns the role's name if the guild currently has the role.
func (r *DiscordRoleResolver) ResolveRole(guildID, roleID snowflake.ID) (string, bool) {
	if r.state == nil || roleID == 0 {
		return "", false
	}

	role, err := r.state.Role(guildID.String(), roleID.String())
	if err != nil || role == nil {
		return "", false
	}
	return role.Name, true
}

// DiscordRoleGranter implements ports.RoleGranter using the Discord REST API.
type DiscordRoleGranter struct {
	session memberRoleAdder
}

// NewDiscordRoleGranter creates a new DiscordRoleGranter.
func NewDiscordRoleGranter(session *discordgo.Session) *DiscordRoleGranter {
	return &DiscordRoleGranter{session: session}
}

// GrantRole adds the role to the guild member.
func (g *DiscordRoleGranter) GrantRole(
	ctx context.Context,
	guildID, userID, roleID snowflake.ID,
) error {
	err := g.session.GuildMemberRoleAdd(
		guildID.String(),
		userID.String(),
		roleID.String(),
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to add guild member role: %w", err)
	}
	return nil
}
