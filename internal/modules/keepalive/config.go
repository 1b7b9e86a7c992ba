package keepalive

import (
	"strings"
	"time"
)

// Config holds the keepalive module configuration.
type Config struct {
	Port         string        `env:"PORT" envDefault:"3002"`
	OriginURL    string        `env:"ORIGIN_URL"`
	PingInterval time.Duration `env:"SELF_PING_INTERVAL" envDefault:"15m"`
}

// pingURL returns the URL the self-pinger requests.
func (c *Config) pingURL() string {
	origin := c.OriginURL
	if origin == "" {
		origin = "http://localhost:" + c.Port
	}
	return strings.TrimRight(origin, "/") + "/ping"
}
