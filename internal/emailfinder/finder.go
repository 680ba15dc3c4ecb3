package emailfinder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead_scraper/internal/domain"
)

const (
	userAgent    = "Mozilla/5.0 (compatible; LeadScraperBot/1.0)"
	maxPageBytes = 1 << 20
)

type Config struct {
	HunterAPIKey  string
	HunterBaseURL string
	FetchTimeout  time.Duration
}

// Finder looks up a contact address for a business website. It keeps no
// state between calls.
type Finder struct {
	httpClient *http.Client
	hunter     *hunterClient
	now        func() time.Time
	logger     *slog.Logger
}

type Option func(*Finder)

func WithHTTPClient(hc *http.Client) Option {
	return func(f *Finder) {
		f.httpClient = hc
		if f.hunter != nil {
			f.hunter.httpClient = hc
		}
	}
}

func New(cfg Config, logger *slog.Logger, opts ...Option) *Finder {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	f := &Finder{
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		logger:     logger.With("component", "email_finder"),
	}
	if cfg.HunterAPIKey != "" {
		f.hunter = newHunterClient(cfg.HunterAPIKey, cfg.HunterBaseURL, f.httpClient)
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Find tries the Hunter domain search first when a key is configured, then
// falls back to scraping the website. A nil result means nothing confident
// was found; lookups never fail hard.
func (f *Finder) Find(ctx context.Context, website, businessName string) *domain.EmailResult {
	website = strings.TrimSpace(website)
	if website == "" {
		return nil
	}
	pageURL := normalizeURL(website)

	if f.hunter != nil {
		if host := hostOf(pageURL); host != "" {
			res, err := f.hunter.domainSearch(ctx, host)
			if err != nil {
				f.logger.Debug("hunter lookup failed", "domain", host, "error", err)
			} else if res != nil {
				res.FoundAt = f.now()
				return res
			}
		}
	}

	emails, err := f.scrape(ctx, pageURL)
	if err != nil {
		f.logger.Debug("website fetch failed",
			"url", pageURL,
			"business", businessName,
			"error", err,
		)
		return nil
	}

	best, ok := Best(emails)
	if !ok {
		return nil
	}

	return &domain.EmailResult{
		Email:      best.Email,
		Confidence: ScoreConfidence(best.Score),
		Source:     domain.EmailSourceScraped,
		FoundAt:    f.now(),
	}
}

// Suggest returns common role addresses for the website's domain, or nil
// when no host can be parsed from it.
func (f *Finder) Suggest(website string) []string {
	website = strings.TrimSpace(website)
	if website == "" {
		return nil
	}
	host := strings.TrimPrefix(hostOf(normalizeURL(website)), "www.")
	if host == "" {
		return nil
	}
	return GuessPatterns(host)
}

func (f *Finder) scrape(ctx context.Context, pageURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return Extract(string(body)), nil
}

func normalizeURL(website string) string {
	if strings.HasPrefix(strings.ToLower(website), "http") {
		return website
	}
	return "https://" + website
}

func hostOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
