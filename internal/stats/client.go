// Package stats fetches the trade API's listing of known stats and turns it
// into (category, id, text) entries the table loader can import.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"github.com/demetriusmayo/PathOfSearching/internal/cache"
	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/util"
	"golang.org/x/time/rate"
)

// FetchError indicates the remote stats source could not be read. It is
// recoverable: the table built from static and seed-file entries stays
// usable.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch stats from %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch stats from %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Entry is one stat imported from the remote listing
type Entry struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Text     string `json:"text"` // raw text; Phrase() gives the table form
}

// Phrase returns the entry text as a canonical table phrase: lowercased, with
// control characters and whitespace runs collapsed to single spaces.
func (e Entry) Phrase() string {
	folded := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(e.Text))
	return strings.Join(strings.Fields(folded), " ")
}

// listing mirrors the remote response shape: a result array of categories,
// each with a label and {id, text} entries.
type listing struct {
	Result []struct {
		Label   string `json:"label"`
		Entries []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"entries"`
	} `json:"result"`
}

// Client fetches the stats listing. Requests go through a single-host rate
// limiter; responses are cached when a cache is supplied.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	maxBytes   int64
	limiter    *rate.Limiter
	cache      cache.Cache // nil disables caching
}

// NewClient creates a stats client from configuration. Pass a nil cache to
// force fresh fetches.
func NewClient(cfg *model.Config, c cache.Cache) *Client {
	rps := cfg.Stats.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Stats.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		endpoint:  cfg.Stats.Endpoint,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		cache:     c,
	}
}

// Fetch retrieves the stats listing and returns the entries under the
// allow-listed category labels. Failures are reported as *FetchError.
func (c *Client) Fetch(ctx context.Context, categories []string) ([]Entry, error) {
	body, err := c.body(ctx)
	if err != nil {
		return nil, err
	}

	var doc listing
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: fmt.Errorf("decode listing: %w", err)}
	}

	allowed := make(map[string]bool, len(categories))
	for _, cat := range categories {
		allowed[cat] = true
	}

	var entries []Entry
	for _, group := range doc.Result {
		if !allowed[group.Label] {
			continue
		}
		for _, e := range group.Entries {
			if e.ID == "" || e.Text == "" {
				continue
			}
			entries = append(entries, Entry{Category: group.Label, ID: e.ID, Text: e.Text})
		}
	}
	return entries, nil
}

// body returns the raw listing document, from cache when possible
func (c *Client) body(ctx context.Context) ([]byte, error) {
	key := cache.Key(c.endpoint)
	if c.cache != nil {
		if body, found := c.cache.Get(key); found {
			return body, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, &FetchError{Endpoint: c.endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if c.cache != nil {
		_ = c.cache.Set(key, body, 0)
	}
	return body, nil
}
