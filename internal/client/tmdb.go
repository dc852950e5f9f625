package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tmdb/browser/internal/config"
	"tmdb/browser/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type TMDBClient interface {
	GetPopular(ctx context.Context) (*domain.PopularPage, error)
	GetMovie(ctx context.Context, id int) (*domain.Movie, error)
}

type tmdbClient struct {
	rl         ratelimit.Limiter
	config     config.TMDBConfig
	httpClient *resty.Client
}

func NewTMDBClient(cfg config.TMDBConfig) TMDBClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(0). // failed loads surface to the user, who re-triggers
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &tmdbClient{
		rl:         rl,
		config:     cfg,
		httpClient: client,
	}
}

func (c *tmdbClient) GetPopular(ctx context.Context) (*domain.PopularPage, error) {
	page := &domain.PopularPage{}
	if err := c.getJSON(ctx, "/movie/popular", page); err != nil {
		return nil, fmt.Errorf("failed to fetch popular movies: %w", err)
	}

	log.Debugf("Fetched popular page %d with %d movies", page.Page, len(page.Results))
	return page, nil
}

func (c *tmdbClient) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	movie := &domain.Movie{}
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", id), movie); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}

	log.Debugf("Fetched details for movie %d (%s)", movie.ID, movie.Title)
	return movie, nil
}

func (c *tmdbClient) getJSON(ctx context.Context, path string, out any) error {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.config.APIKey).
		Get(path)

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return &RemoteError{Err: err}
	}

	if resp.IsError() {
		return &RemoteError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}
