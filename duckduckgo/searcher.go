// Package duckduckgo implements search retrieval against the DuckDuckGo
// HTML endpoint. The endpoint serves static markup, so plain HTTP plus
// goquery parsing is enough; no JavaScript rendering is required.
package duckduckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/trendspot"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the DuckDuckGo HTML search endpoint.
	DefaultBaseURL = "https://html.duckduckgo.com/html/"

	// DefaultRegion biases results toward Korean-language travel content,
	// matching the query template in trendspot.SearchQuery.
	DefaultRegion = "kr-kr"

	// DefaultTimeout is the default timeout for search requests.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond limits how often the endpoint is queried.
	DefaultRequestsPerSecond = 1.0

	// userAgent identifies requests as coming from a regular browser.
	// The endpoint rejects the default Go client user agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

// Ensure Searcher implements trendspot.Searcher at compile time.
var _ trendspot.Searcher = (*Searcher)(nil)

// Searcher retrieves travel search results from DuckDuckGo.
type Searcher struct {
	client  *http.Client
	baseURL string
	region  string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the search endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *Searcher) {
		s.baseURL = baseURL
	}
}

// WithRegion sets the region code passed to the endpoint (kl parameter).
func WithRegion(region string) Option {
	return func(s *Searcher) {
		s.region = region
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithRateLimit sets the maximum number of requests per second.
func WithRateLimit(rps float64) Option {
	return func(s *Searcher) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearcher creates a new DuckDuckGo Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		baseURL: DefaultBaseURL,
		region:  DefaultRegion,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Search retrieves up to maxResults travel search results for the subject.
// An empty result set is returned as a legitimate, non-error outcome;
// callers decide whether to fall back to placeholder data.
func (s *Searcher) Search(ctx context.Context, subject string, maxResults int) ([]*trendspot.SearchResult, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, trendspot.Errorf(trendspot.EINVALID, "search subject required")
	}
	if maxResults <= 0 {
		maxResults = trendspot.DefaultMaxResults
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{
		"q":  {trendspot.SearchQuery(subject)},
		"kl": {s.region},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, trendspot.Errorf(trendspot.EINTERNAL, "duckduckgo returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseResults(doc, maxResults), nil
}

// parseResults extracts search results from a DuckDuckGo HTML result page.
// Ad rows and rows without a link are skipped.
func parseResults(doc *goquery.Document, maxResults int) []*trendspot.SearchResult {
	results := make([]*trendspot.SearchResult, 0, maxResults)

	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}

		anchor := sel.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok || href == "" {
			return true
		}

		result := &trendspot.SearchResult{
			Title:   strings.TrimSpace(anchor.Text()),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
			URL:     resolveRedirect(href),
		}
		if result.Validate() != nil {
			return true
		}

		results = append(results, result)
		return len(results) < maxResults
	})

	return results
}

// resolveRedirect unwraps DuckDuckGo redirect links of the form
// //duckduckgo.com/l/?uddg=<escaped-url>. Non-redirect links are
// returned unchanged.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasPrefix(u.Path, "/l/") {
		return href
	}
	target := u.Query().Get("uddg")
	if target == "" {
		return href
	}
	return target
}
