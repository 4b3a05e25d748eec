package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://fantasy.premierleague.com/api"

// CacheProvider is the narrow caching interface the client depends on.
type CacheProvider interface {
	SetSimple(key string, value interface{}, expiration time.Duration) error
	GetSimple(key string, dest interface{}) error
}

// Client talks to the FPL API with response caching, rate limiting and a
// circuit breaker around the upstream.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      CacheProvider
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	logger     *logrus.Logger
	cacheTTL   time.Duration
}

// Config controls client construction.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	CacheTTL         time.Duration
	RequestsPerMin   int
	BreakerThreshold uint32
}

// NewClient creates an FPL API client.
func NewClient(cfg Config, cache CacheProvider, logger *logrus.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 30 * time.Minute
	}
	if cfg.RequestsPerMin == 0 {
		cfg.RequestsPerMin = 30
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "fpl-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > cfg.BreakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:    cache,
		breaker:  breaker,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMin)), 1),
		logger:   logger,
		cacheTTL: cfg.CacheTTL,
	}
}

// GetBootstrap fetches bootstrap-static (all players, teams, gameweeks).
func (c *Client) GetBootstrap(ctx context.Context) (*Bootstrap, error) {
	var bootstrap Bootstrap
	if err := c.getCached(ctx, "fpl:bootstrap", "/bootstrap-static/", &bootstrap); err != nil {
		return nil, err
	}
	return &bootstrap, nil
}

// GetFixtures fetches the full season fixture list.
func (c *Client) GetFixtures(ctx context.Context) ([]APIFixture, error) {
	var fixtures []APIFixture
	if err := c.getCached(ctx, "fpl:fixtures", "/fixtures/", &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// GetEntry fetches a manager's entry details.
func (c *Client) GetEntry(ctx context.Context, entryID int) (*Entry, error) {
	var entry Entry
	path := fmt.Sprintf("/entry/%d/", entryID)
	if err := c.getCached(ctx, fmt.Sprintf("fpl:entry:%d", entryID), path, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetPicks fetches a manager's squad picks for one gameweek.
func (c *Client) GetPicks(ctx context.Context, entryID, gameweek int) (*Picks, error) {
	var picks Picks
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gameweek)
	if err := c.getCached(ctx, fmt.Sprintf("fpl:picks:%d:%d", entryID, gameweek), path, &picks); err != nil {
		return nil, err
	}
	return &picks, nil
}

// CurrentGameweek returns the id of the current event, falling back to the
// first listed event before the season starts.
func CurrentGameweek(bootstrap *Bootstrap) int {
	for _, event := range bootstrap.Events {
		if event.IsCurrent {
			return event.ID
		}
	}
	if len(bootstrap.Events) > 0 {
		return bootstrap.Events[0].ID
	}
	return 1
}

func (c *Client) getCached(ctx context.Context, cacheKey, path string, dest interface{}) error {
	if c.cache != nil {
		if err := c.cache.GetSimple(cacheKey, dest); err == nil {
			return nil
		}
	}

	if err := c.getJSON(ctx, path, dest); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.SetSimple(cacheKey, dest, c.cacheTTL); err != nil {
			c.logger.Warnf("Failed to cache %s: %v", cacheKey, err)
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("FPL API returned status %d for %s", resp.StatusCode, path)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	if err := json.Unmarshal(body.([]byte), dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
