package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Multiple   spaces  ", "multiple-spaces"},
		{"already-hyphenated-title", "already-hyphenated-title"},
		{"UPPER Case & Symbols!!!", "upper-case-symbols"},
		{"", ""},
		{"!!!", ""},
		{
			"a very long title that keeps going and going and going and going and going",
			"a-very-long-title-that-keeps-going-and-going-and-g",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	path, err := w.Write("https://example.com/post", "Hello, World!", "# Hello\n\nbody", "", ts)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14T092653-hello-world.md", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "url: https://example.com/post\n")
	assert.Contains(t, content, "title: Hello, World!\n")
	assert.Contains(t, content, "fetched_at: 2025-03-14T09:26:53Z\n")
	assert.NotContains(t, content, "source_note")
	assert.Contains(t, content, "---\n\n# Hello\n\nbody")
}

func TestWriteEscapesNote(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.Write("https://example.com", "t", "c", `she said "hi"`, time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `source_note: "she said \"hi\""`)
}

func TestWriteEmptyTitleUsesHost(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	path, err := w.Write("https://example.com/post", "", "content", "", ts)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01T000000-examplecom.md", filepath.Base(path))
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewWriter(dir)

	_, err := w.Write("https://example.com", "t", "c", "", time.Now())
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
