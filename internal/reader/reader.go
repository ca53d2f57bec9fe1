package reader

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"zfetch/internal/detect"
	"zfetch/internal/fetch"
)

// DefaultPrefix is the reader-proxy endpoint. The target URL is appended to
// it and the proxy returns the page as markdown text.
const DefaultPrefix = "https://r.jina.ai/"

const (
	userAgent      = "zfetch/1.0"
	requestTimeout = 30 * time.Second
)

var headingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Client fetches URLs through a text-extraction reader proxy.
type Client struct {
	httpClient *http.Client
	prefix     string
	detector   *detect.Detector
}

// New creates a Client against the default reader proxy.
func New(detector *detect.Detector) *Client {
	return NewWithPrefix(DefaultPrefix, detector)
}

// NewWithPrefix creates a Client against a custom proxy endpoint.
func NewWithPrefix(prefix string, detector *detect.Detector) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		prefix:     prefix,
		detector:   detector,
	}
}

// Fetch issues a single GET through the reader proxy. A body that looks like
// a login wall is reported as a login-wall failure so the orchestrator can
// route the URL to the rendered fallback.
func (c *Client) Fetch(ctx context.Context, target string) fetch.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.prefix+target, nil)
	if err != nil {
		return fetch.Fail(fetch.KindTransport, "failed to build request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetch.Fail(fetch.KindTransport, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fetch.Fail(fetch.KindTransport, "HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetch.Fail(fetch.KindTransport, "failed to read response body: %v", err)
	}
	content := string(body)

	if c.detector.LoginWall(content) {
		return fetch.Fail(fetch.KindLoginWall, "got login page instead of content (JS rendering required)")
	}

	return fetch.OK(extractTitle(content, target), content)
}

// extractTitle takes the first top-level markdown heading in the body,
// falling back to the URL's host when there is none.
func extractTitle(content, target string) string {
	if m := headingPattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if u, err := url.Parse(target); err == nil && u.Host != "" {
		return u.Host
	}
	return target
}

var _ fetch.Retriever = (*Client)(nil)
