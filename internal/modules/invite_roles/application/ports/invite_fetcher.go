package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// InviteFetcher defines the interface for fetching a guild's active invites.
type InviteFetcher interface {
	// FetchInvites returns a fresh snapshot of all active invites of the guild.
	FetchInvites(ctx context.Context, guildID snowflake.ID) (domain.Snapshot, error)
}
