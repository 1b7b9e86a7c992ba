package usecases

import (
	"context"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
)

func mockSnapshot(guildID snowflake.ID, pairs ...any) domain.Snapshot {
	invites := make([]domain.Invite, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		invites = append(invites, domain.Invite{Code: pairs[i].(string), Uses: pairs[i+1].(int)})
	}
	return domain.NewSnapshot(guildID, invites...)
}

type mockSnapshotRepository struct {
	mu        sync.Mutex
	snapshots map[snowflake.ID]domain.Snapshot
	sets      int
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{
		snapshots: make(map[snowflake.ID]domain.Snapshot),
	}
}

func (m *mockSnapshotRepository) Get(guildID snowflake.ID) (domain.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.snapshots[guildID]
	return s, ok
}

func (m *mockSnapshotRepository) Set(snapshot domain.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.snapshots[snapshot.GuildID()] = snapshot
}

type mockInviteFetcher struct {
	mu        sync.Mutex
	snapshots []domain.Snapshot // returned in order, the last one repeats
	err       error
	calls     int
}

func (m *mockInviteFetcher) FetchInvites(
	_ context.Context,
	guildID snowflake.ID,
) (domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return domain.Snapshot{}, m.err
	}
	if len(m.snapshots) == 0 {
		return domain.NewSnapshot(guildID), nil
	}

	s := m.snapshots[0]
	if len(m.snapshots) > 1 {
		m.snapshots = m.snapshots[1:]
	}
	return s, nil
}

func (m *mockInviteFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockRoleMappingStore struct {
	mappings map[string]snowflake.ID
	err      error
	lookups  []string
}

func (m *mockRoleMappingStore) FindByInviteCode(
	_ context.Context,
	code string,
) (domain.RoleMapping, error) {
	m.lookups = append(m.lookups, code)
	if m.err != nil {
		return domain.RoleMapping{}, m.err
	}
	roleID, ok := m.mappings[code]
	if !ok {
		return domain.RoleMapping{}, domain.ErrRoleMappingNotFound
	}
	return domain.RoleMapping{InviteCode: code, RoleID: roleID}, nil
}

type mockRoleResolver struct {
	roles map[snowflake.ID]string
}

func (m *mockRoleResolver) ResolveRole(_, roleID snowflake.ID) (string, bool) {
	name, ok := m.roles[roleID]
	return name, ok
}

type grantCall struct {
	guildID, userID, roleID snowflake.ID
}

type mockRoleGranter struct {
	mu    sync.Mutex
	err   error
	calls []grantCall
}

func (m *mockRoleGranter) GrantRole(_ context.Context, guildID, userID, roleID snowflake.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, grantCall{guildID: guildID, userID: userID, roleID: roleID})
	return m.err
}
