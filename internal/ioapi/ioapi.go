// Package ioapi implements redlist.Client over the Red List website API.
// Every Client throttles its own requests, a worker that owns a Client
// never sends requests more often than the configured delay allows.
package ioapi

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	searchPath  = "/dosearch/assessments/_search"
	speciesPath = "/api/v4/species/"
)

// Client talks to the Red List API.
type Client struct {
	http       *resty.Client
	limiter    *rate.Limiter
	searchSize int
	enc        gnfmt.GNjson
	log        *slog.Logger
}

// New creates a Client from API settings. A non-positive delay disables
// throttling.
func New(cfg config.APIConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeader("Referer", cfg.BaseURL)
	if cfg.CSRFToken != "" {
		client.SetHeader("X-Csrf-Token", cfg.CSRFToken)
	}
	if cfg.Cookie != "" {
		client.SetHeader("Cookie", cfg.Cookie)
	}

	limit := rate.Inf
	if cfg.Delay > 0 {
		limit = rate.Every(time.Duration(cfg.Delay) * time.Millisecond)
	}

	return &Client{
		http:       client,
		limiter:    rate.NewLimiter(limit, 1),
		searchSize: cfg.SearchSize,
		log:        log,
	}
}

// SearchSpecies returns search hits for a name in the order of their
// relevance.
func (c *Client) SearchSpecies(
	ctx context.Context,
	name string,
) ([]redlist.SearchHit, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("size", strconv.Itoa(c.searchSize)).
		SetQueryParam("_source", "false").
		SetHeader("Content-Type", "application/json").
		SetBody(searchBody(name)).
		Post(searchPath)
	if err != nil {
		return nil, FetchError(searchPath, 0, err)
	}
	if !resp.IsSuccess() {
		return nil, FetchError(searchPath, resp.StatusCode(), nil)
	}

	var res searchResult
	if err = c.enc.Decode(resp.Body(), &res); err != nil {
		return nil, DecodeError(searchPath, err)
	}

	hits := res.hits()
	c.log.Debug("Species search",
		"name", name,
		"hits", len(hits),
	)
	return hits, nil
}

// Assessment returns the details of one assessment.
func (c *Client) Assessment(
	ctx context.Context,
	id string,
) (*redlist.AssessmentDoc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	path := speciesPath + url.PathEscape(id)
	resp, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, FetchError(path, 0, err)
	}
	if !resp.IsSuccess() {
		return nil, FetchError(path, resp.StatusCode(), nil)
	}

	var res speciesDetail
	if err = c.enc.Decode(resp.Body(), &res); err != nil {
		return nil, DecodeError(path, err)
	}
	return res.doc(id), nil
}
