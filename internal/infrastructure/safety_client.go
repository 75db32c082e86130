package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"project_travelSafe/internal/entities"
	"project_travelSafe/internal/interfaces"
)

// SafetyFactsClient implements interfaces.SafetyFactsSource against
// the safety facts HTTP endpoint.
type SafetyFactsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSafetyFactsClient(baseURL string, timeout time.Duration) interfaces.SafetyFactsSource {
	return &SafetyFactsClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SafetyFactsClient) FetchFacts(ctx context.Context, destination string) (*entities.SafetyFacts, error) {
	endpoint := c.baseURL + "/api/safety?location=" + url.QueryEscape(destination)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("safety facts source returned HTTP %d", resp.StatusCode)
	}

	var facts entities.SafetyFacts
	if err := json.NewDecoder(resp.Body).Decode(&facts); err != nil {
		return nil, fmt.Errorf("decode safety facts: %w", err)
	}
	return &facts, nil
}
