package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputJSONObject(t *testing.T) {
	items := ParseInput(`{"url": "https://example.com/a", "note": "check this"}`)

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/a", items[0].URL)
	assert.Equal(t, "check this", items[0].Note)
}

func TestParseInputJSONObjectMissingKeys(t *testing.T) {
	items := ParseInput(`{"url": "https://example.com/a"}`)

	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Note)
}

func TestParseInputJSONArray(t *testing.T) {
	items := ParseInput(`[{"url": "https://example.com/a"}, {"url": "https://example.com/b", "note": "b"}]`)

	require.Len(t, items, 2)
	assert.Equal(t, "https://example.com/a", items[0].URL)
	assert.Equal(t, "b", items[1].Note)
}

func TestParseInputMalformedJSONFallsThrough(t *testing.T) {
	// Broken JSON containing a URL still yields one item via the fallback
	// scan.
	items := ParseInput(`{"url": "https://example.com/a`)

	require.Len(t, items, 1)
	assert.Equal(t, `https://example.com/a`, items[0].URL)
}

func TestParseInputList(t *testing.T) {
	items := ParseInput("- https://example.com/a — first\n- https://example.com/b")

	require.Len(t, items, 2)
	assert.Equal(t, Item{URL: "https://example.com/a", Note: "first"}, items[0])
	assert.Equal(t, Item{URL: "https://example.com/b", Note: ""}, items[1])
}

func TestParseInputListIgnoresNonMatchingLines(t *testing.T) {
	items := ParseInput("Things to read:\n- https://example.com/a\nnot a bullet\n* https://example.com/b - star bullet")

	require.Len(t, items, 2)
	assert.Equal(t, "https://example.com/a", items[0].URL)
	assert.Equal(t, "https://example.com/b", items[1].URL)
	assert.Equal(t, "star bullet", items[1].Note)
}

func TestParseInputSingleURLWithNote(t *testing.T) {
	items := ParseInput("https://example.com/post\n\nWorth archiving.\nTwo lines of note.")

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/post", items[0].URL)
	assert.Equal(t, "Worth archiving.\nTwo lines of note.", items[0].Note)
}

func TestParseInputSingleURLNoNote(t *testing.T) {
	items := ParseInput("https://example.com/post")

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/post", items[0].URL)
	assert.Equal(t, "", items[0].Note)
}

func TestParseInputFallbackScan(t *testing.T) {
	items := ParseInput("please fetch https://example.com/deep/link when you can")

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/deep/link", items[0].URL)
	assert.Equal(t, "", items[0].Note)
}

func TestParseInputNoURL(t *testing.T) {
	assert.Empty(t, ParseInput("nothing useful here"))
	assert.Empty(t, ParseInput(""))
	assert.Empty(t, ParseInput("   \n\n  "))
}

func TestParseInputListTakesPriorityOverSingle(t *testing.T) {
	// The first line alone would qualify as single-URL form, but a bullet
	// line below promotes the whole blob to list form.
	items := ParseInput("https://example.com/ignored\n- https://example.com/a")

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/a", items[0].URL)
}
