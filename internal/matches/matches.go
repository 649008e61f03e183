package matches

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mrusso19/schedina/internal/config"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/pkg/clients"
	"go.uber.org/zap"
)

// Match statuses understood by the data source.
const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Source supplies scheduled and finished match records. It is read-only and
// has no side effects on the core.
type Source interface {
	List(ctx context.Context, status string) ([]domain.Match, error)
}

type matchJSON struct {
	ID       int64     `json:"id"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
	Score struct {
		FullTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fullTime"`
	} `json:"score"`
}

type listResponse struct {
	Matches []matchJSON `json:"matches"`
}

// Client fetches matches from a football-data v4 compatible API.
type Client struct {
	url         string
	token       string
	competition string
	client      clients.HTTPClientI
}

func NewClient(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:         cfg.MatchAPIAddress,
		token:       cfg.MatchAPIKey,
		competition: cfg.Competition,
		client:      client,
	}
}

func (c *Client) List(ctx context.Context, status string) ([]domain.Match, error) {
	url := fmt.Sprintf("%s/v4/competitions/%s/matches?status=%s", c.url, c.competition, status)
	headers := http.Header{}
	if c.token != "" {
		headers.Set("X-Auth-Token", c.token)
	}

	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, _, err = c.client.Get(url, headers)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("failed to list %s matches after %d retries: %w", status, maxRetries, err)
			}
			if statusCode != http.StatusOK {
				zap.L().Error("unexpected status code from match API",
					zap.Int("status", statusCode), zap.String("matchStatus", status))
				return nil, fmt.Errorf("unexpected status code %d from match API", statusCode)
			}
			return parseMatches(respBody)
		}
	}
	return nil, err
}

func parseMatches(respBody []byte) ([]domain.Match, error) {
	var response listResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse match list: %w", err)
	}

	matches := make([]domain.Match, 0, len(response.Matches))
	for _, m := range response.Matches {
		matches = append(matches, domain.Match{
			ID:        m.ID,
			HomeTeam:  m.HomeTeam.Name,
			AwayTeam:  m.AwayTeam.Name,
			Kickoff:   m.UTCDate,
			Status:    m.Status,
			HomeScore: m.Score.FullTime.Home,
			AwayScore: m.Score.FullTime.Away,
		})
	}
	return matches, nil
}
