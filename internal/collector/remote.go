package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"LoadSentinel/internal/model"
)

// RemoteSource implements Source against a REST record store.
type RemoteSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRemoteSource creates a new source with optional proxy support.
func NewRemoteSource(baseURL, apiKey, proxyURL string) *RemoteSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RemoteSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (r *RemoteSource) Name() string { return "remote" }

func (r *RemoteSource) Athletes(ctx context.Context) ([]model.Athlete, error) {
	var out []model.Athlete
	if err := r.get(ctx, "/api/v1/athletes", &out); err != nil {
		return nil, fmt.Errorf("fetch athletes: %w", err)
	}
	return out, nil
}

func (r *RemoteSource) DailyLoads(ctx context.Context, since string) ([]model.DailyLoad, error) {
	var out []model.DailyLoad
	if err := r.get(ctx, "/api/v1/daily-loads?since="+url.QueryEscape(since), &out); err != nil {
		return nil, fmt.Errorf("fetch daily loads: %w", err)
	}
	return out, nil
}

func (r *RemoteSource) Injuries(ctx context.Context) ([]model.Injury, error) {
	var out []model.Injury
	if err := r.get(ctx, "/api/v1/injuries", &out); err != nil {
		return nil, fmt.Errorf("fetch injuries: %w", err)
	}
	return out, nil
}

// Thresholds treats a 404 from the settings endpoint as "nothing stored".
func (r *RemoteSource) Thresholds(ctx context.Context) (*model.ThresholdOverrides, error) {
	var out model.ThresholdOverrides
	if err := r.get(ctx, "/api/v1/settings", &out); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch settings: %w", err)
	}
	return &out, nil
}

var errNotFound = errors.New("not found")

func (r *RemoteSource) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if r.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.APIKey)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, errNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
