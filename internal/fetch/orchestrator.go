package fetch

import (
	"context"
	"log/slog"
)

// Retriever fetches one URL through a single backend.
type Retriever interface {
	Fetch(ctx context.Context, url string) Outcome
}

// Fetcher composes the reader-proxy and rendered-DOM backends into one
// definitive outcome per URL.
type Fetcher struct {
	reader   Retriever
	renderer Retriever
	logger   *slog.Logger
}

// New creates a Fetcher.
func New(reader, renderer Retriever, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{reader: reader, renderer: renderer, logger: logger}
}

// Fetch resolves the content for one URL:
//
//  1. URLs that require rendering go straight to the rendered-DOM backend.
//  2. Otherwise the reader proxy is tried first.
//  3. A reader failure caused by a login wall falls back to the rendered
//     backend; any other failure (network, HTTP status) is returned as-is so
//     genuine availability errors are not masked by an expensive browser run.
func (f *Fetcher) Fetch(ctx context.Context, url string) Outcome {
	if NeedsRendering(url) {
		f.logger.Info("rendering required, using browser", "url", url)
		return f.renderer.Fetch(ctx, url)
	}

	out := f.reader.Fetch(ctx, url)
	if out.Success() {
		return out
	}

	if out.Err.Kind == KindLoginWall {
		f.logger.Info("reader got login page, falling back to browser", "url", url)
		return f.renderer.Fetch(ctx, url)
	}

	return out
}
