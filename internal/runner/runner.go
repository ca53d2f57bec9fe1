package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zfetch/internal/fetch"
	"zfetch/internal/output"
	"zfetch/internal/queue"
)

// Fetcher resolves one URL into a definitive outcome.
type Fetcher interface {
	Fetch(ctx context.Context, url string) fetch.Outcome
}

// Summary is the result of one queue run.
type Summary struct {
	Succeeded int
	Failed    int
	Processed []string
}

// Runner drives the fetch pipeline over a queue directory or a single URL.
// Processing is strictly sequential: one URL is fully resolved and written
// before the next begins.
type Runner struct {
	queueDir string
	fetcher  Fetcher
	writer   *output.Writer
	logger   *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Runner.
func New(queueDir string, fetcher Fetcher, writer *output.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		queueDir: queueDir,
		fetcher:  fetcher,
		writer:   writer,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessQueue reads every non-hidden file in the queue directory, fetches
// each URL it yields, and deletes the file once consumed. Files that are
// unreadable or yield no URLs are still consumed and counted as failures.
func (r *Runner) ProcessQueue(ctx context.Context) (Summary, error) {
	var summary Summary

	entries, err := os.ReadDir(r.queueDir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("queue directory does not exist", "dir", r.queueDir)
			return summary, nil
		}
		return summary, fmt.Errorf("failed to read queue directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		r.logger.Info("no files in queue")
		return summary, nil
	}
	r.logger.Info("processing queue", "files", len(files))

	for _, name := range files {
		path := filepath.Join(r.queueDir, name)
		r.logger.Info("processing file", "file", name)

		data, err := os.ReadFile(path)
		if err != nil {
			r.logger.Error("failed to read queue file", "file", name, "error", err)
			summary.Failed++
			r.consume(path, &summary)
			continue
		}

		items := queue.ParseInput(string(data))
		if len(items) == 0 {
			r.logger.Error("no URLs found in queue file", "file", name)
			summary.Failed++
			r.consume(path, &summary)
			continue
		}
		r.logger.Info("found URLs", "file", name, "count", len(items))

		for i, item := range items {
			if item.URL == "" {
				r.logger.Warn("skipping item with empty URL", "file", name)
				continue
			}
			r.processItem(ctx, item, i, &summary)
		}

		r.consume(path, &summary)
	}

	r.logger.Info("run summary",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"files", strings.Join(summary.Processed, ", "))

	return summary, nil
}

// processItem fetches and writes one URL. Items after the first in a batch
// get a timestamp offset by their index so filenames stay unique even when
// titles collide.
func (r *Runner) processItem(ctx context.Context, item queue.Item, index int, summary *Summary) {
	r.logger.Info("fetching", "url", item.URL)

	out := r.fetcher.Fetch(ctx, item.URL)
	if !out.Success() {
		r.logger.Error("fetch failed", "url", item.URL, "kind", out.Err.Kind, "error", out.Err.Message)
		summary.Failed++
		return
	}

	ts := r.now().UTC().Add(time.Duration(index) * time.Second)
	path, err := r.writer.Write(item.URL, out.Title, out.Content, item.Note, ts)
	if err != nil {
		r.logger.Error("write failed", "url", item.URL, "error", err)
		summary.Failed++
		return
	}

	r.logger.Info("written", "file", filepath.Base(path))
	summary.Succeeded++
}

// consume deletes a processed queue file and records it in the summary.
func (r *Runner) consume(path string, summary *Summary) {
	if err := os.Remove(path); err != nil {
		r.logger.Error("failed to delete queue file", "file", filepath.Base(path), "error", err)
		return
	}
	summary.Processed = append(summary.Processed, filepath.Base(path))
	r.logger.Info("deleted", "file", filepath.Base(path))
}

// RunSingle performs the fetch-and-write sequence for exactly one URL.
func (r *Runner) RunSingle(ctx context.Context, url, note string) error {
	r.logger.Info("fetching", "url", url)

	out := r.fetcher.Fetch(ctx, url)
	if !out.Success() {
		return fmt.Errorf("fetch failed (%s): %s", out.Err.Kind, out.Err.Message)
	}

	path, err := r.writer.Write(url, out.Title, out.Content, note, r.now().UTC())
	if err != nil {
		return err
	}

	r.logger.Info("written", "file", filepath.Base(path))
	return nil
}
