package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"lead_scraper/internal/domain"
)

const fieldMask = "places.displayName,places.formattedAddress,places.nationalPhoneNumber," +
	"places.internationalPhoneNumber,places.websiteUri,places.googleMapsUri," +
	"places.rating,places.userRatingCount,nextPageToken"

const maxErrorBody = 64 << 10

// Config holds Google Places client configuration.
type Config struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	MaxPages       int
	MaxResults     int
	RequestDelay   time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source searches businesses through the Places Text Search API.
type Source struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	maxPages       int
	maxResults     int
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Source) {
		s.httpClient = hc
	}
}

func New(cfg Config, logger *slog.Logger, opts ...Option) *Source {
	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}

	s := &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		maxPages:       max(cfg.MaxPages, 1),
		maxResults:     cfg.MaxResults,
		limiter:        rate.NewLimiter(limit, 1),
		maxAttempts:    max(cfg.MaxAttempts, 1),
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "google_places"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search returns up to MaxResults places for query, following result pages
// up to MaxPages.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Place, error) {
	var results []domain.Place
	pageToken := ""

	for page := 0; page < s.maxPages; page++ {
		resp, err := s.fetchPage(ctx, query, pageToken)
		if err != nil {
			return nil, err
		}

		for _, p := range resp.Places {
			results = append(results, transform(p))
			if s.maxResults > 0 && len(results) >= s.maxResults {
				return results, nil
			}
		}

		s.logger.Debug("fetched page",
			"query", query,
			"page", page,
			"places", len(resp.Places),
			"total", len(results),
		)

		if resp.NextPageToken == "" || len(resp.Places) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	return results, nil
}

func (s *Source) fetchPage(ctx context.Context, query, pageToken string) (*searchTextResponse, error) {
	var resp *searchTextResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, query, pageToken)
		if err == nil {
			return resp, nil
		}

		var perm *PermanentError
		if errors.As(err, &perm) || ctx.Err() != nil || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"query", query,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	var perm *PermanentError
	if errors.As(err, &perm) {
		return nil, err
	}
	// provider errors end up verbatim in the term's progress message
	return nil, fmt.Errorf("Google Places API error: %w", err)
}

func (s *Source) doRequest(ctx context.Context, query, pageToken string) (*searchTextResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pageSize := 20
	if s.maxResults > 0 && s.maxResults < pageSize {
		pageSize = s.maxResults
	}

	body, err := json.Marshal(searchTextRequest{
		TextQuery: query,
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/places:searchText", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, statusError(resp.StatusCode, query, raw)
	}

	var out searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &out, nil
}

// PermanentError is a provider response that retrying cannot fix.
type PermanentError struct {
	StatusCode int
	Message    string
}

func (e *PermanentError) Error() string {
	return e.Message
}

// statusError maps a non-200 response to the message a user sees on the
// failed search term.
func statusError(code int, query string, body []byte) error {
	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)
	detail := apiErr.Error.Message

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		if detail == "" {
			detail = "REQUEST_DENIED - Check API key configuration"
		}
		return &PermanentError{StatusCode: code, Message: "Google Places API error: " + detail}
	case code == http.StatusTooManyRequests:
		return &PermanentError{StatusCode: code, Message: "Google Places API quota exceeded. Please try again later."}
	case code == http.StatusBadRequest:
		return &PermanentError{StatusCode: code, Message: fmt.Sprintf("Invalid search query: %q", query)}
	case code >= 500:
		return fmt.Errorf("unexpected status: %d", code)
	default:
		return &PermanentError{StatusCode: code, Message: fmt.Sprintf("Google Places API error: unexpected status %d", code)}
	}
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func transform(p apiPlace) domain.Place {
	name := strings.TrimSpace(p.DisplayName.Text)
	if name == "" {
		name = "Unknown"
	}

	phone := p.NationalPhoneNumber
	if phone == "" {
		phone = p.InternationalPhoneNumber
	}

	return domain.Place{
		BusinessName: name,
		Address:      optional(p.FormattedAddress),
		Phone:        optional(phone),
		Website:      optional(p.WebsiteURI),
		GoogleURL:    optional(p.GoogleMapsURI),
		Rating:       p.Rating,
		ReviewCount:  p.UserRatingCount,
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
