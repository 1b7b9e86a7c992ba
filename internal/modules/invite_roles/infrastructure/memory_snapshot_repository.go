package infrastructure

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

// MemorySnapshotRepository is an in-memory implementation of SnapshotRepository.
// Entries live for the process lifetime and are only ever replaced.
type MemorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[snowflake.ID]domain.Snapshot
}

// NewMemorySnapshotRepository creates a new MemorySnapshotRepository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		snapshots: make(map[snowflake.ID]domain.Snapshot),
	}
}

// Get returns the Snapshot for the given guild, if one was stored.
func (r *MemorySnapshotRepository) Get(guildID snowflake.ID) (domain.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[guildID]
	return snapshot, ok
}

// Set replaces the Snapshot of the snapshot's guild.
func (r *MemorySnapshotRepository) Set(snapshot domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.GuildID()] = snapshot
}

// Len returns the number of cached guilds (for testing/monitoring).
func (r *MemorySnapshotRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.snapshots)
}

// Ensure MemorySnapshotRepository implements SnapshotRepository.
var _ domain.SnapshotRepository = (*MemorySnapshotRepository)(nil)
