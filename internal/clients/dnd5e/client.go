package dnd5e

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	internal "github.com/KirkDiggler/dnd-session-tracker/internal"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// DefaultBaseURL is the public 5e reference API
const DefaultBaseURL = "https://www.dnd5eapi.co/api"

const defaultTimeout = 5 * time.Second

type client struct {
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	// BaseURL overrides the reference API root. Defaults to DefaultBaseURL.
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client against the 5e reference API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// listResponse is the wire shape of the API's list endpoints
type listResponse struct {
	Count   int    `json:"count"`
	Results []*Ref `json:"results"`
}

// ListSpells fetches the spell reference list
func (c *client) ListSpells(ctx context.Context) ([]*Ref, error) {
	var response listResponse
	if err := c.getJSON(ctx, "/spells", &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// ListClasses fetches the class reference list
func (c *client) ListClasses(ctx context.Context) ([]*Ref, error) {
	var response listResponse
	if err := c.getJSON(ctx, "/classes", &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// GetClass retrieves a class by its API index
func (c *client) GetClass(ctx context.Context, index string) (*Class, error) {
	var response Class
	if err := c.getJSON(ctx, "/classes/"+index, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// getJSON performs a GET against the API and decodes the body. Transport
// failures and non-2xx statuses come back as coded errors so callers can
// degrade to cached data.
func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return dnderr.Wrapf(err, "failed to build request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dnderr.Unavailablef("reference API unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return dnderr.NotFoundf("reference data '%s' not found", path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return dnderr.Unavailablef("reference API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dnderr.Unavailablef("failed to decode %s response: %v", path, err)
	}
	return nil
}
