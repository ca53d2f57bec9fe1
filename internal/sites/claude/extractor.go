package claude

import (
	"strings"
	"time"

	"github.com/go-rod/rod"

	"zfetch/internal/extract"
)

func init() {
	extract.Register(&Extractor{})
}

const (
	// Claude share pages render the transcript client-side; probing
	// selectors too early finds an empty shell.
	renderGrace  = 3 * time.Second
	selectorWait = 10 * time.Second
	minTurnChars = 10
)

// Candidate selectors for conversation turns, tried in order. Claude's class
// names are build-generated, so matching is on stable name fragments.
var turnSelectors = []string{
	`[data-testid*="message"]`,
	`[class*="ConversationItem"]`,
	`[class*="message"]`,
	`[class*="Message"]`,
	`[class*="turn"]`,
	`[class*="Turn"]`,
	`div[class*="prose"]`,
}

// Extractor converts a rendered Claude share page into turn-delimited
// markdown.
type Extractor struct{}

func (e *Extractor) Name() string { return "claude" }

func (e *Extractor) Match(url string) bool {
	return strings.Contains(url, "claude.ai/share/")
}

func (e *Extractor) Extract(page *rod.Page) (string, string, error) {
	time.Sleep(renderGrace)
	waitForTurns(page)

	title := normalizeTitle(extract.PageTitle(page))

	var turns rod.Elements
	for _, sel := range turnSelectors {
		els, err := page.Elements(sel)
		if err == nil && len(els) > 0 {
			turns = els
			break
		}
	}

	var messages []string
	for _, turn := range turns {
		text, err := turn.Text()
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		// Very short fragments are layout noise, not turns.
		if len(text) > minTurnChars {
			messages = append(messages, text)
		}
	}

	if len(messages) == 0 {
		return title, fallbackContent(page, title), nil
	}

	content := "# " + title + "\n\n" + strings.Join(messages, "\n\n---\n\n")
	return title, content, nil
}

// waitForTurns blocks until any candidate selector matches, bounded by
// selectorWait per candidate.
func waitForTurns(page *rod.Page) {
	for _, sel := range turnSelectors {
		if _, err := page.Timeout(selectorWait).Element(sel); err == nil {
			return
		}
	}
}

// fallbackContent takes the inner text of the main region, then the whole
// body, still wrapped under the title heading.
func fallbackContent(page *rod.Page, title string) string {
	for _, sel := range []string{"main", "body"} {
		el, err := page.Timeout(2 * time.Second).Element(sel)
		if err != nil {
			continue
		}
		text, err := el.Text()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return "# " + title + "\n\n" + text
		}
	}
	return ""
}

func normalizeTitle(raw string) string {
	title := strings.TrimSpace(strings.ReplaceAll(raw, " - Claude", ""))
	if title == "Claude" {
		title = "Claude Conversation"
	}
	return title
}
