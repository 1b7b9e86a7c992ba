package invite_roles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/inviterole/internal/bot"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/application/usecases"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/infrastructure"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/presentation"
)

func init() {
	bot.Register(&InviteRolesModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*InviteRolesModule)(nil)

// InviteRolesModule grants roles to new members based on the invite they joined with.
type InviteRolesModule struct {
	config        *Config
	roleStore     *infrastructure.PostgresRoleStore
	eventHandlers *presentation.EventHandlers

	// Context for event handlers
	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *InviteRolesModule) Name() string {
	return "invite_roles"
}

// Intents returns the gateway intents needed to receive member joins.
func (m *InviteRolesModule) Intents() discordgo.Intent {
	return discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
}

// EventHandlers returns the event handlers for this module.
func (m *InviteRolesModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.Ready) {
			m.eventHandlers.HandleReady(s, event)
		},
		func(s *discordgo.Session, event *discordgo.GuildMemberAdd) {
			m.eventHandlers.HandleGuildMemberAdd(s, event)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *InviteRolesModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init connects to the role store and wires the join handling.
func (m *InviteRolesModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		return errors.New("invite_roles module initialized without config")
	}
	if deps.Session == nil {
		return errors.New("invite_roles module requires a Discord session")
	}

	db, err := infrastructure.OpenPostgres(m.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open role store: %w", err)
	}
	m.roleStore = infrastructure.NewPostgresRoleStore(db, m.config.RoleStoreTable)

	m.ctx, m.cancel = context.WithCancel(context.Background())

	join := usecases.NewJoinService(
		m.config.GuildID,
		infrastructure.NewMemorySnapshotRepository(),
		infrastructure.NewDiscordInviteFetcher(deps.Session),
		m.roleStore,
		infrastructure.NewDiscordRoleResolver(deps.Session.State),
		infrastructure.NewDiscordRoleGranter(deps.Session),
	)
	m.eventHandlers = presentation.NewEventHandlers(m.ctx, join)

	slog.Info("invite_roles module initialized", "guild_id", m.config.GuildID)

	return nil
}

// Shutdown cleans up module resources.
func (m *InviteRolesModule) Shutdown() error {
	if m.cancel != nil {
		m.cancel()
	}

	if m.roleStore != nil {
		return m.roleStore.Close()
	}

	return nil
}
