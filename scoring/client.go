// Package scoring calls the external recommendation-scoring function.
// The weighting logic lives entirely in that service; this client only
// carries the user identity over and the scored list back.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/playscout/game-recommender/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) Recommendations(ctx context.Context, userEmail string) ([]domain.RecommendationItem, error) {
	payload, err := json.Marshal(domain.RecommendationRequest{UserEmail: userEmail})
	if err != nil {
		return nil, domain.NewUpstreamError("failed to encode scoring request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build scoring request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("scoring request failed", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to read scoring response", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("scoring request failed with status %d", res.StatusCode),
			errors.New(string(body)),
		)
	}

	var items []domain.RecommendationItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, domain.NewUpstreamError("failed to decode scoring response", err)
	}
	return items, nil
}
