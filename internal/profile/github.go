// Package profile fetches public profile data used to decorate the footer.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.github.com"

// Profile is the subset of a GitHub user record the footer needs.
type Profile struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

type apiError struct {
	Message string `json:"message"`
}

// Client reads user profiles from the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client with an explicit timeout. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// FetchUser requests the public profile of username.
func (c *Client) FetchUser(ctx context.Context, username string) (*Profile, error) {
	u, err := url.JoinPath(c.baseURL, "users", username)
	if err != nil {
		return nil, fmt.Errorf("build profile url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "pwgen")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return nil, fmt.Errorf("profile API error (HTTP %d)", resp.StatusCode)
		}
		return nil, fmt.Errorf("profile API error (HTTP %d): %s", resp.StatusCode, apiErr.Message)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &p, nil
}
