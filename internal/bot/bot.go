package bot

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// baseIntents are requested regardless of the loaded modules.
const baseIntents = discordgo.IntentsGuilds

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	session *discordgo.Session
	modules []Module
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:  cfg,
		modules: make([]Module, 0),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start loads module configuration, initializes modules and connects to Discord.
// Module configuration and initialization errors abort startup before the gateway
// connection is opened.
func (b *Bot) Start() error {
	// Load module configuration first so missing credentials fail fast
	if err := b.loadModuleConfigs(); err != nil {
		return fmt.Errorf("failed to load module config: %w", err)
	}

	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = b.collectIntents()
	b.session = session

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Close Discord session first so no new events reach the modules
	var closeErr error
	if b.session != nil {
		closeErr = b.session.Close()
	}

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	return closeErr
}

// loadModuleConfigs calls LoadConfig on every module that implements ConfigurableModule.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		configurable, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := configurable.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
		slog.Debug("loaded module config", "module", mod.Name())
	}

	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Config:  b.config,
		Session: b.session,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// collectIntents returns the union of the base intents and all module intents.
func (b *Bot) collectIntents() discordgo.Intent {
	intents := discordgo.Intent(baseIntents)
	for _, mod := range b.modules {
		if im, ok := mod.(IntentsModule); ok {
			intents |= im.Intents()
		}
	}
	return intents
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}
