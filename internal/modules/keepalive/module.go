package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/sglre6355/inviterole/internal/bot"
	"github.com/sglre6355/inviterole/internal/modules/keepalive/infrastructure"
	"github.com/sglre6355/inviterole/internal/modules/keepalive/presentation"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take on shutdown.
const shutdownTimeout = 5 * time.Second

func init() {
	bot.Register(&KeepaliveModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*KeepaliveModule)(nil)

// KeepaliveModule serves the liveness endpoints and pings itself periodically.
type KeepaliveModule struct {
	config *Config
	server *http.Server
	pinger *infrastructure.SelfPinger

	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *KeepaliveModule) Name() string {
	return "keepalive"
}

// EventHandlers returns no handlers; the module does not consume gateway events.
func (m *KeepaliveModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *KeepaliveModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if cfg.PingInterval <= 0 {
		return fmt.Errorf("invalid SELF_PING_INTERVAL %s", cfg.PingInterval)
	}
	m.config = cfg
	return nil
}

// Init starts the HTTP server and the self-ping loop.
func (m *KeepaliveModule) Init(_ bot.ModuleDependencies) error {
	if m.config == nil {
		return errors.New("keepalive module initialized without config")
	}

	gin.SetMode(gin.ReleaseMode)
	router := presentation.NewRouter(presentation.NewStatusHandlers(time.Now))

	m.server = &http.Server{
		Addr:              ":" + m.config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	m.pinger = infrastructure.NewSelfPinger(nil, m.config.pingURL(), m.config.PingInterval)
	m.ctx, m.cancel = context.WithCancel(context.Background())

	go func() {
		slog.Info("started keepalive server", "addr", m.server.Addr)
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("keepalive server stopped", "error", err)
		}
	}()
	go m.pinger.Run(m.ctx)

	return nil
}

// Shutdown stops the self-ping loop and the HTTP server.
func (m *KeepaliveModule) Shutdown() error {
	if m.cancel != nil {
		m.cancel()
	}

	if m.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return m.server.Shutdown(ctx)
}
