// Package title resolves a human-readable name for a gallery URL: it fetches
// the page and extracts the first <title> element, with a URL-derived slug as
// the fallback when the page is unreachable or untitled.
package title

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultTimeout bounds the single title-fetch request. Slow galleries are
// common; the downloader has its own timeouts, this one only guards naming.
const DefaultTimeout = 10 * time.Second

// Some galleries serve a captcha page to unknown clients, so the fetch
// identifies itself as a desktop browser.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Resolver fetches page titles over HTTP
type Resolver struct {
	client    *http.Client
	userAgent string
}

// Option configures a Resolver
type Option func(*Resolver)

// WithClient overrides the HTTP client, mainly for tests
func WithClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		r.client.Timeout = timeout
	}
}

// NewResolver creates a resolver with the default timeout and user agent
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches pageURL and returns the trimmed text of its first <title>
// element. Failure here is never fatal: callers fall back to SlugFromURL.
func (r *Resolver) Resolve(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build title request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	title, err := extractTitle(resp.Body)
	if err != nil {
		return "", err
	}
	return title, nil
}

// extractTitle tokenizes HTML and returns the text of the first non-empty
// <title> element.
func extractTitle(body io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(body)

	inTitle := false
	var text strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input past the point of interest.
			return "", fmt.Errorf("no title element found")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if strings.EqualFold(string(name), "title") {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				text.Write(tokenizer.Text())
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if strings.EqualFold(string(name), "title") {
				title := strings.TrimSpace(text.String())
				if title == "" {
					return "", fmt.Errorf("title element is empty")
				}
				return title, nil
			}
		}
	}
}

// SlugFromURL derives a fallback name from the URL itself: the last non-empty
// path segment, then the hostname with dots replaced, then "gallery".
func SlugFromURL(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "gallery"
	}

	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) > 0 {
		return segments[len(segments)-1]
	}

	if parsed.Hostname() != "" {
		return strings.ReplaceAll(parsed.Hostname(), ".", "_")
	}

	return "gallery"
}
