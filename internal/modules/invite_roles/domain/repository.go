package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// SnapshotRepository holds the most recently observed invite snapshot per guild.
type SnapshotRepository interface {
	// Get returns the cached Snapshot for the given guild, if any.
	Get(guildID snowflake.ID) (Snapshot, bool)

	// Set replaces the cached Snapshot for the snapshot's guild.
	Set(snapshot Snapshot)
}
