package fortnite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is a fortnite-api.com client that implements the StatsClient
// interface. It performs at most one request per lookup; there are no
// retries at this layer.
type APIClient struct {
	httpClient *http.Client
	apiKey     string
	BaseURL    string
}

// NewClient creates a new fortnite-api.com client.
func NewClient(apiKey, baseURL string) StatsClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the StatsClient interface.
var _ StatsClient = (*APIClient)(nil)

// GetPlayerStats fetches the lifetime Battle Royale stats for a player by
// Epic Games display name and maps them to a PlayerStats record. Numeric
// fields the source omits come back as zero, a missing account name comes
// back as "Unknown Player".
func (c *APIClient) GetPlayerStats(name string) (PlayerStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlayerStats{}, ErrEmptyName
	}

	endpoint := fmt.Sprintf("%s/v2/stats/br/v2?name=%s&accountType=epic", c.BaseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(context.Background(), "GET", endpoint, nil)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	log.Debug("Requesting player stats from Fortnite API", "name", name)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var statsResp statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&statsResp); err != nil {
		return PlayerStats{}, fmt.Errorf("failed to decode response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		log.Error("Fortnite API rejected credentials", "status", resp.StatusCode)
		return PlayerStats{}, fmt.Errorf("%w: %s", ErrUnauthorized, statsResp.Error)
	case http.StatusNotFound:
		return PlayerStats{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from Fortnite API", "status", resp.StatusCode, "error", statsResp.Error)
		return PlayerStats{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	// The API signals "no such player" with an OK body missing the data field.
	if statsResp.Data == nil {
		return PlayerStats{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	stats := PlayerStats{
		Username:      statsResp.Data.Account.Name,
		Kills:         statsResp.Data.Stats.All.Overall.Kills,
		Wins:          statsResp.Data.Stats.All.Overall.Wins,
		KD:            statsResp.Data.Stats.All.Overall.KD,
		MatchesPlayed: statsResp.Data.Stats.All.Overall.Matches,
		WinRate:       statsResp.Data.Stats.All.Overall.WinRate,
	}
	if stats.Username == "" {
		stats.Username = "Unknown Player"
	}
	if statsResp.Data.BattlePass != nil {
		stats.Level = statsResp.Data.BattlePass.Level
	}

	log.Debug("Fetched player stats", "name", stats.Username, "kills", stats.Kills, "wins", stats.Wins)
	return stats, nil
}
