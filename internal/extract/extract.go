package extract

import (
	"strings"

	"github.com/go-rod/rod"
)

// Extractor converts a rendered page of a known provider into a title and
// markdown content. Implementations register themselves via Register so that
// adding a provider is a registration, not a change to the fetch logic.
type Extractor interface {
	Name() string
	// Match reports whether this extractor handles the given URL.
	Match(url string) bool
	// Extract walks the rendered DOM and returns the normalized title and
	// the turn-delimited markdown content.
	Extract(page *rod.Page) (title, content string, err error)
}

var registry []Extractor

// Register adds an extractor to the registry. Called from package init.
func Register(e Extractor) {
	registry = append(registry, e)
}

// Find returns the first registered extractor matching the URL.
func Find(url string) (Extractor, bool) {
	for _, e := range registry {
		if e.Match(url) {
			return e, true
		}
	}
	return nil, false
}

// Names returns the registered extractor names, for logging.
func Names() string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.Name())
	}
	return strings.Join(names, ", ")
}

// PageTitle reads the document title, or "" when it cannot be read.
func PageTitle(page *rod.Page) string {
	info, err := page.Info()
	if err != nil {
		return ""
	}
	return info.Title
}
