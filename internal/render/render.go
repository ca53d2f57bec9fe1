package render

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"zfetch/internal/browser"
	"zfetch/internal/detect"
	"zfetch/internal/extract"
	"zfetch/internal/fetch"
	"zfetch/internal/markdown"
)

const (
	navigateTimeout = 60 * time.Second
	idleTimeout     = 30 * time.Second
	selectorProbe   = 1 * time.Second
	minContentChars = 100
)

// Candidate main-content selectors for pages with no registered extractor.
var contentSelectors = []string{"main", "article", ".content", "#content"}

// Renderer fetches URLs with a headless browser. Each Fetch launches an
// isolated session and tears it down before returning; sessions are never
// reused across URLs.
type Renderer struct {
	cfg      browser.Config
	detector *detect.Detector
	logger   *slog.Logger
}

// New creates a Renderer.
func New(cfg browser.Config, detector *detect.Detector, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, detector: detector, logger: logger}
}

// Fetch navigates to the URL and extracts content, dispatching to a
// registered conversation extractor when one claims the URL. All failures,
// including a missing browser binary, are reported as outcomes.
func (r *Renderer) Fetch(ctx context.Context, url string) fetch.Outcome {
	b, err := browser.New(r.cfg)
	if err != nil {
		return fetch.Fail(fetch.KindCapability, "%v", err)
	}
	defer b.Close()

	page, err := b.Page()
	if err != nil {
		return fetch.Fail(fetch.KindCapability, "%v", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.Timeout(navigateTimeout).Navigate(url); err != nil {
		return fetch.Fail(fetch.KindTransport, "failed to navigate to %s: %v", url, err)
	}
	if err := page.Timeout(navigateTimeout).WaitLoad(); err != nil {
		return fetch.Fail(fetch.KindTransport, "failed to load %s: %v", url, err)
	}

	var title, content string
	if ex, ok := extract.Find(url); ok {
		r.logger.Debug("using registered extractor", "extractor", ex.Name(), "url", url)
		title, content, err = ex.Extract(page)
	} else {
		title, content, err = r.extractGeneric(page)
	}
	if err != nil {
		return fetch.Fail(fetch.KindTransport, "failed to extract content: %v", err)
	}

	if len(strings.TrimSpace(content)) < minContentChars {
		return fetch.Fail(fetch.KindTooShort, "failed to extract meaningful content")
	}

	if r.detector.Challenge(content) || title == "Just a moment..." {
		return fetch.Fail(fetch.KindChallenge, "blocked by Cloudflare challenge (bot detection)")
	}

	return fetch.OK(title, content)
}

// extractGeneric waits for network quiescence, then takes the first matching
// main-content region, falling back to the whole body. Region HTML is
// converted to markdown; inner text is the last resort.
func (r *Renderer) extractGeneric(page *rod.Page) (string, string, error) {
	wait := page.Timeout(idleTimeout).WaitRequestIdle(
		500*time.Millisecond, nil, nil,
		[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia},
	)
	wait()

	title := extract.PageTitle(page)

	for _, sel := range contentSelectors {
		el, err := page.Timeout(selectorProbe).Element(sel)
		if err != nil {
			continue
		}
		if html, err := el.HTML(); err == nil {
			if md, err := markdown.FromHTML(html); err == nil && strings.TrimSpace(md) != "" {
				return title, md, nil
			}
		}
		if text, err := el.Text(); err == nil && strings.TrimSpace(text) != "" {
			return title, text, nil
		}
	}

	body, err := page.Element("body")
	if err != nil {
		return title, "", err
	}
	text, err := body.Text()
	if err != nil {
		return title, "", err
	}
	return title, text, nil
}

var _ fetch.Retriever = (*Renderer)(nil)
