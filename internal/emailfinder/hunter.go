package emailfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"lead_scraper/internal/domain"
)

const defaultHunterBaseURL = "https://api.hunter.io"

type hunterResponse struct {
	Data struct {
		Emails []struct {
			Value      string `json:"value"`
			Confidence int    `json:"confidence"`
		} `json:"emails"`
	} `json:"data"`
}

type hunterClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newHunterClient(apiKey, baseURL string, hc *http.Client) *hunterClient {
	if baseURL == "" {
		baseURL = defaultHunterBaseURL
	}
	return &hunterClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// domainSearch returns the best known address for a domain, or nil when
// Hunter has none.
func (c *hunterClient) domainSearch(ctx context.Context, domainName string) (*domain.EmailResult, error) {
	q := url.Values{}
	q.Set("domain", domainName)
	q.Set("api_key", c.apiKey)
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/domain-search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var out hunterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(out.Data.Emails) == 0 || out.Data.Emails[0].Value == "" {
		return nil, nil
	}

	best := out.Data.Emails[0]
	return &domain.EmailResult{
		Email:      best.Value,
		Confidence: hunterConfidence(best.Confidence),
		Source:     domain.EmailSourceAPI,
	}, nil
}
