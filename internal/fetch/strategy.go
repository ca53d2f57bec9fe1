package fetch

import "zfetch/internal/extract"

// NeedsRendering reports whether the URL requires a rendered-DOM fetch.
// A URL needs rendering iff a registered conversation extractor claims it;
// everything else is assumed retrievable as plain text.
func NeedsRendering(url string) bool {
	_, ok := extract.Find(url)
	return ok
}
