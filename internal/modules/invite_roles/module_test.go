package invite_roles

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/inviterole/internal/bot"
)

func TestInviteRolesModule_Init_RequiresConfig(t *testing.T) {
	m := &InviteRolesModule{}

	if err := m.Init(bot.ModuleDependencies{Session: &discordgo.Session{}}); err == nil {
		t.Error("expected error without config, got nil")
	}
}

func TestInviteRolesModule_Init_RequiresSession(t *testing.T) {
	m := &InviteRolesModule{config: &Config{GuildID: 1, DatabaseURL: "postgres://localhost/postgres"}}

	if err := m.Init(bot.ModuleDependencies{}); err == nil {
		t.Error("expected error without session, got nil")
	}
}

func TestInviteRolesModule_Intents(t *testing.T) {
	m := &InviteRolesModule{}

	if m.Intents()&discordgo.IntentsGuildMembers == 0 {
		t.Error("expected guild members intent to receive member joins")
	}
}

func TestInviteRolesModule_ShutdownWithoutInit(t *testing.T) {
	m := &InviteRolesModule{}

	if err := m.Shutdown(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
