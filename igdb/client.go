// Package igdb talks to the external game catalog API. Queries are
// written in the API's own filter mini-language and pass through this
// client as opaque strings.
package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/playscout/game-recommender/domain"
)

const (
	DefaultAPIURL   = "https://api.igdb.com/v4"
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token"
)

type Config struct {
	ClientID     string
	ClientSecret string
	APIURL       string
	TokenURL     string
	HTTPClient   *http.Client
}

type Client struct {
	clientID     string
	clientSecret string
	apiURL       string
	tokenURL     string
	httpClient   *http.Client
	tokens       tokenCache
	now          func() time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		apiURL:       cfg.APIURL,
		tokenURL:     cfg.TokenURL,
		httpClient:   cfg.HTTPClient,
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// token returns a bearer token, refreshing it when absent or expired.
// The refresh happens outside the cache lock, so two concurrent callers
// may both exchange credentials; either token is valid and the later
// store wins.
func (c *Client) token(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.get(c.now()); ok {
		return tok, nil
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewUpstreamError("failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewUpstreamError("token exchange failed", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", domain.NewUpstreamError("failed to read token response", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", domain.NewUpstreamError(
			fmt.Sprintf("token exchange failed with status %d", res.StatusCode),
			errors.New(string(body)),
		)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", domain.NewUpstreamError("failed to decode token response", err)
	}

	c.tokens.set(tr.AccessToken, c.now().Add(time.Duration(tr.ExpiresIn)*time.Second))
	return tr.AccessToken, nil
}

// Request POSTs the query string to <apiURL>/<endpoint> and decodes the
// JSON array response into out. Non-2xx responses and transport errors
// surface as upstream errors; there is no retry.
func (c *Client) Request(ctx context.Context, endpoint string, query string, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+endpoint, strings.NewReader(query))
	if err != nil {
		return domain.NewUpstreamError("failed to build catalog request", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError("catalog request failed", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.NewUpstreamError("failed to read catalog response", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domain.NewUpstreamError(
			fmt.Sprintf("catalog request failed with status %d", res.StatusCode),
			errors.New(string(body)),
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewUpstreamError("failed to decode catalog response", err)
	}
	return nil
}
