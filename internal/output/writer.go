package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const maxSlugLength = 50

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Writer persists fetched content as markdown files in a single directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer targeting dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes one fetched URL into a timestamp-and-slug-named markdown
// file with a frontmatter metadata block, and returns the file path. The
// write is whole-file; no partial states are observable.
func (w *Writer) Write(target, title, content, note string, ts time.Time) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		if u, err := url.Parse(target); err == nil {
			slug = Slugify(u.Host)
		}
	}
	filename := ts.UTC().Format("2006-01-02T150405") + "-" + slug + ".md"

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "url: %s\n", target)
	fmt.Fprintf(&b, "title: %s\n", title)
	fmt.Fprintf(&b, "fetched_at: %s\n", ts.UTC().Format(time.RFC3339))
	if note != "" {
		fmt.Fprintf(&b, "source_note: %q\n", note)
	}
	b.WriteString("---\n\n")
	b.WriteString(content)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Slugify derives a filesystem-safe filename component from a title:
// lowercase, non-alphanumerics stripped, whitespace and hyphen runs
// collapsed to single hyphens, truncated to 50 characters.
func Slugify(text string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(text), "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}
