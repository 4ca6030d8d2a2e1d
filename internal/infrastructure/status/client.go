// Package status derives human-readable game-server status strings from the
// server's HTTP surfaces and its local restart-schedule config.
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
)

// Display strings for the status channel name.
const (
	LineOnline   = "🟢 Server is online"
	LineStarting = "🟡 Server is starting"
	LineOffline  = "🔴 Server is offline"
)

// Client polls the game server's info and player endpoints.
type Client struct {
	infoURL    string
	playersURL string
	httpClient *http.Client
}

func NewClient(cfg *sharedConfig.GameServerConfig) *Client {
	return &Client{
		infoURL:    cfg.InfoURL,
		playersURL: cfg.PlayersURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// StatusLine returns the display string for the current server state: any
// 200 from the info endpoint means online, any other response means the
// server is still starting, and a transport error means offline.
func (c *Client) StatusLine(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.infoURL, nil)
	if err != nil {
		return LineOffline
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LineOffline
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return LineOnline
	}
	return LineStarting
}

// PlayerCount fetches the player list endpoint and returns the array length.
func (c *Client) PlayerCount(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.playersURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build players request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch players: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("players endpoint returned status %d", resp.StatusCode)
	}

	var players []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return 0, fmt.Errorf("failed to decode players payload: %w", err)
	}
	return len(players), nil
}

// PlayersLine renders the presence string, falling back to an error notice
// when the endpoint is unreachable.
func (c *Client) PlayersLine(ctx context.Context) string {
	count, err := c.PlayerCount(ctx)
	if err != nil {
		return "players unavailable"
	}
	return fmt.Sprintf("%d players", count)
}
