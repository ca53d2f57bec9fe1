package queue

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Item is one queued URL with an optional free-text note attached as
// provenance.
type Item struct {
	URL  string `json:"url"`
	Note string `json:"note"`
}

var (
	// bullet marker + URL + optional em/en-dash or hyphen separated note
	listPattern = regexp.MustCompile(`^[-*]\s+(https?://\S+)(?:\s+[—–-]\s+(.*))?$`)
	urlPattern  = regexp.MustCompile(`^https?://\S+$`)
	anyURL      = regexp.MustCompile(`https?://\S+`)
)

// ParseInput expands one queued text blob into an ordered list of items.
// Recognized shapes, in priority order: JSON object or array, markdown list
// lines, a single URL with an optional note paragraph, and finally any
// URL-shaped substring. Unrecognizable input yields an empty list.
func ParseInput(content string) []Item {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
		if items, ok := parseJSON(content); ok {
			return items
		}
		// Malformed JSON falls through to the other shapes.
	}

	if items := parseList(content); len(items) > 0 {
		return items
	}

	if items := parseSingle(content); len(items) > 0 {
		return items
	}

	if m := anyURL.FindString(content); m != "" {
		return []Item{{URL: m}}
	}

	return nil
}

func parseJSON(content string) ([]Item, bool) {
	if strings.HasPrefix(content, "{") {
		var item Item
		if err := json.Unmarshal([]byte(content), &item); err != nil {
			return nil, false
		}
		return []Item{item}, true
	}

	var items []Item
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, false
	}
	return items, true
}

func parseList(content string) []Item {
	var items []Item
	for _, line := range strings.Split(content, "\n") {
		m := listPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		items = append(items, Item{URL: m[1], Note: m[2]})
	}
	return items
}

// parseSingle handles "URL on the first line, note after the first blank
// line" inputs.
func parseSingle(content string) []Item {
	parts := strings.SplitN(content, "\n\n", 2)

	firstLine := strings.TrimSpace(strings.SplitN(strings.TrimSpace(parts[0]), "\n", 2)[0])
	if !urlPattern.MatchString(firstLine) {
		return nil
	}

	note := ""
	if len(parts) > 1 {
		note = strings.TrimSpace(parts[1])
	}
	return []Item{{URL: firstLine, Note: note}}
}
