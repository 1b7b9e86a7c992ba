package infrastructure

import (
	"sync"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

func TestMemorySnapshotRepository_Get(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	guildID := snowflake.ID(123)

	// Get should report absence if nothing was stored
	if _, ok := repo.Get(guildID); ok {
		t.Fatal("expected no snapshot before set")
	}

	snapshot := domain.NewSnapshot(guildID, domain.Invite{Code: "A", Uses: 3})
	repo.Set(snapshot)

	got, ok := repo.Get(guildID)
	if !ok {
		t.Fatal("expected snapshot after set")
	}
	if !got.Equal(snapshot) {
		t.Error("expected stored snapshot to be returned")
	}

	// Different guild should be absent
	if _, ok := repo.Get(snowflake.ID(456)); ok {
		t.Error("expected no snapshot for different guild")
	}
}

func TestMemorySnapshotRepository_SetReplaces(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	guildID := snowflake.ID(123)

	repo.Set(domain.NewSnapshot(guildID,
		domain.Invite{Code: "A", Uses: 3},
		domain.Invite{Code: "B", Uses: 5},
	))
	replacement := domain.NewSnapshot(guildID, domain.Invite{Code: "C", Uses: 1})
	repo.Set(replacement)

	got, _ := repo.Get(guildID)
	if !got.Equal(replacement) {
		t.Errorf("expected replacement snapshot, got %v", got.Invites())
	}
	if _, ok := got.Get("A"); ok {
		t.Error("expected replaced entries not to be merged")
	}
}

func TestMemorySnapshotRepository_SetTwiceIsIdempotent(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	guildID := snowflake.ID(123)
	snapshot := domain.NewSnapshot(guildID, domain.Invite{Code: "A", Uses: 3})

	repo.Set(snapshot)
	repo.Set(snapshot)

	got, ok := repo.Get(guildID)
	if !ok || !got.Equal(snapshot) {
		t.Error("expected snapshot to be unchanged after setting it twice")
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", repo.Len())
	}
}

func TestMemorySnapshotRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemorySnapshotRepository()
	var wg sync.WaitGroup

	// Concurrent sets for different guilds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			guildID := snowflake.ID(id)
			repo.Set(domain.NewSnapshot(guildID, domain.Invite{Code: "A", Uses: id}))
		}(i)
	}

	wg.Wait()

	if repo.Len() != 100 {
		t.Errorf("expected 100 snapshots, got %d", repo.Len())
	}

	// Concurrent gets
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			snapshot, ok := repo.Get(snowflake.ID(id))
			if !ok {
				t.Errorf("expected snapshot for guild %d", id)
				return
			}
			if snapshot.Uses("A") != id {
				t.Errorf("expected %d uses for guild %d, got %d", id, id, snapshot.Uses("A"))
			}
		}(i)
	}

	wg.Wait()
}
