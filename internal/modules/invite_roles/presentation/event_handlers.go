package presentation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/application/usecases"
)

// EventHandlers handles Discord gateway events for invite role assignment.
type EventHandlers struct {
	ctx  context.Context
	join *usecases.JoinService
}

// NewEventHandlers creates a new EventHandlers. Every event is handled under ctx.
func NewEventHandlers(ctx context.Context, join *usecases.JoinService) *EventHandlers {
	return &EventHandlers{
		ctx:  ctx,
		join: join,
	}
}

// HandleReady caches the target guild's invites once the session is ready.
func (h *EventHandlers) HandleReady(_ *discordgo.Session, event *discordgo.Ready) {
	guildID := h.join.TargetGuildID()

	if !readyIncludesGuild(event, guildID) {
		slog.Error("bot is not a member of the target guild", "guild_id", guildID)
		return
	}

	count, err := h.join.PrimeCache(h.ctx, guildID)
	if err != nil {
		slog.Error("failed to cache guild invites", "guild_id", guildID, "error", err)
		return
	}

	slog.Info("cached guild invites", "guild_id", guildID, "count", count)
}

// HandleGuildMemberAdd attributes a join to an invite and grants the mapped role.
func (h *EventHandlers) HandleGuildMemberAdd(_ *discordgo.Session, event *discordgo.GuildMemberAdd) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic while handling member join", "panic", r)
		}
	}()

	if event == nil || event.Member == nil || event.Member.User == nil {
		return
	}

	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in member join", "error", err)
		return
	}

	userID, err := snowflake.Parse(event.Member.User.ID)
	if err != nil {
		slog.Error("failed to parse user ID in member join", "error", err)
		return
	}

	output, err := h.join.HandleMemberJoin(h.ctx, usecases.MemberJoinInput{
		GuildID: guildID,
		UserID:  userID,
	})

	logJoin(event.Member.User.Username, guildID, userID, output, err)
}

// logJoin logs the terminal state of a member join at the level it calls for.
func logJoin(
	username string,
	guildID, userID snowflake.ID,
	output usecases.MemberJoinOutput,
	err error,
) {
	attrs := []any{
		"guild_id", guildID,
		"user_id", userID,
		"username", username,
		"outcome", output.Outcome.String(),
	}
	if output.InviteCode != "" {
		attrs = append(attrs, "invite_code", output.InviteCode)
	}
	if output.RoleID != 0 {
		attrs = append(attrs, "role_id", output.RoleID)
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}

	switch output.Outcome {
	case usecases.OutcomeIgnored:
		slog.Debug("ignored member join from non-target guild", attrs...)
	case usecases.OutcomeNoAttribution:
		slog.Warn("could not detect invite used by member", attrs...)
	case usecases.OutcomeNoRoleMapping:
		if errors.Is(err, usecases.ErrRoleMappingNotFound) {
			slog.Error("found no role mapping for invite", attrs...)
		} else {
			slog.Error("failed to look up role mapping for invite", attrs...)
		}
	case usecases.OutcomeRoleUnresolved:
		slog.Debug("mapped role does not exist in guild", attrs...)
	case usecases.OutcomeRoleGranted:
		slog.Info("assigned role to member", append(attrs, "role_name", output.RoleName)...)
	default:
		slog.Error("failed to handle member join", attrs...)
	}
}

// readyIncludesGuild reports whether the Ready payload lists the guild.
func readyIncludesGuild(event *discordgo.Ready, guildID snowflake.ID) bool {
	if event == nil {
		return false
	}
	for _, g := range event.Guilds {
		if g != nil && g.ID == guildID.String() {
			return true
		}
	}
	return false
}
