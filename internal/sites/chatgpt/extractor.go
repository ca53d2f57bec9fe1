package chatgpt

import (
	"strings"
	"time"

	"github.com/go-rod/rod"

	"zfetch/internal/extract"
)

func init() {
	extract.Register(&Extractor{})
}

const selectorWait = 30 * time.Second

// turnSelector matches every conversation turn in one query; the role
// attribute distinguishes human from assistant turns.
const turnSelector = `[data-message-author-role], [class*="agent-turn"], [class*="user-turn"]`

const roleAttr = "data-message-author-role"

// Extractor converts a rendered ChatGPT share page into role-labeled,
// turn-delimited markdown.
type Extractor struct{}

func (e *Extractor) Name() string { return "chatgpt" }

func (e *Extractor) Match(url string) bool {
	return strings.Contains(url, "chatgpt.com/share/") ||
		strings.Contains(url, "chat.openai.com/share/")
}

func (e *Extractor) Extract(page *rod.Page) (string, string, error) {
	// Wait for the conversation to load; on timeout we still try the
	// fallbacks below.
	page.Timeout(selectorWait).Element(turnSelector)

	title := normalizeTitle(extract.PageTitle(page))

	turns, err := page.Elements(turnSelector)
	if err != nil || len(turns) == 0 {
		return title, fallbackContent(page, title), nil
	}

	var messages []string
	for _, turn := range turns {
		text, err := turn.Text()
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		role := ""
		if attr, err := turn.Attribute(roleAttr); err == nil && attr != nil {
			role = *attr
		}
		messages = append(messages, formatTurn(role, text))
	}

	if len(messages) == 0 {
		return title, fallbackContent(page, title), nil
	}

	content := "# " + title + "\n\n" + strings.Join(messages, "\n\n---\n\n")
	return title, content, nil
}

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

// formatTurn prefixes a turn with its speaker label. Turns with no inferable
// role are left unlabeled.
func formatTurn(role, text string) string {
	switch role {
	case "user":
		return "**Human:**\n" + text
	case "assistant":
		return "**Assistant:**\n" + text
	default:
		return text
	}
}

func normalizeTitle(raw string) string {
	title := strings.ReplaceAll(raw, " | ChatGPT", "")
	title = strings.ReplaceAll(title, "ChatGPT - ", "")
	return strings.TrimSpace(title)
}
