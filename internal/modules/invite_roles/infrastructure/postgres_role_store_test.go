package infrastructure

import (
	"context"
	"strings"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB returns a gorm handle that builds statements without a live database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run database: %v", err)
	}
	return db
}

func TestPostgresRoleStore_QueryByInviteCode(t *testing.T) {
	store := NewPostgresRoleStore(newDryRunDB(t), "")

	var record roleMappingRecord
	stmt := store.byInviteCode(context.Background(), "abc").Take(&record).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, `FROM "discord_invites"`) {
		t.Errorf("expected query on discord_invites, got %q", sql)
	}
	if !strings.Contains(sql, "invite_code = $1") {
		t.Errorf("expected invite code filter, got %q", sql)
	}
	if len(stmt.Vars) == 0 || stmt.Vars[0] != "abc" {
		t.Errorf("expected first bind var %q, got %v", "abc", stmt.Vars)
	}
}

func TestPostgresRoleStore_CustomTable(t *testing.T) {
	store := NewPostgresRoleStore(newDryRunDB(t), "invite_roles")

	var record roleMappingRecord
	sql := store.byInviteCode(context.Background(), "abc").Take(&record).Statement.SQL.String()

	if !strings.Contains(sql, `FROM "invite_roles"`) {
		t.Errorf("expected query on invite_roles, got %q", sql)
	}
}

func TestToRoleMapping(t *testing.T) {
	tests := []struct {
		name    string
		record  roleMappingRecord
		want    snowflake.ID
		wantErr bool
	}{
		{
			name:   "valid role id",
			record: roleMappingRecord{InviteCode: "abc", RoleID: "123456789012345678"},
			want:   snowflake.ID(123456789012345678),
		},
		{
			name:   "surrounding whitespace",
			record: roleMappingRecord{InviteCode: "abc", RoleID: " 42 "},
			want:   snowflake.ID(42),
		},
		{
			name:    "not a snowflake",
			record:  roleMappingRecord{InviteCode: "abc", RoleID: "moderator"},
			wantErr: true,
		},
		{
			name:    "empty role id",
			record:  roleMappingRecord{InviteCode: "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping, err := toRoleMapping(tt.record)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mapping.RoleID != tt.want {
				t.Errorf("expected role %d, got %d", tt.want, mapping.RoleID)
			}
			if mapping.InviteCode != tt.record.InviteCode {
				t.Errorf("expected code %q, got %q", tt.record.InviteCode, mapping.InviteCode)
			}
		})
	}
}

func TestOpenPostgres_EmptyDSN(t *testing.T) {
	if _, err := OpenPostgres("  "); err == nil {
		t.Error("expected error for empty DSN, got nil")
	}
}
