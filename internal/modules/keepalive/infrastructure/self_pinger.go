package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// SelfPinger periodically requests the process's own ping endpoint so that the
// hosting environment sees traffic.
type SelfPinger struct {
	client   *http.Client
	url      string
	interval time.Duration
}

// NewSelfPinger creates a SelfPinger requesting url every interval.
func NewSelfPinger(client *http.Client, url string, interval time.Duration) *SelfPinger {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SelfPinger{
		client:   client,
		url:      url,
		interval: interval,
	}
}

// Run pings on every tick until ctx is cancelled. Failures are logged and never stop the loop.
func (p *SelfPinger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Ping(ctx); err != nil {
				slog.Error("self-ping failed", "url", p.url, "error", err)
			}
		}
	}
}

// Ping requests the ping endpoint once.
func (p *SelfPinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send ping request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected ping status %d", resp.StatusCode)
	}
	return nil
}
