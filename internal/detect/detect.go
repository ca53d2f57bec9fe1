package detect

import "strings"

// Detector classifies fetched text as a login wall or a bot-challenge page.
// It is a rule-based scorer over literal phrase lists; callers depend on the
// type rather than the lists so the heuristics can be swapped out later.
type Detector struct {
	loginPhrases     []string
	challengePhrases []string
}

// New creates a Detector with the default phrase lists.
func New() *Detector {
	return &Detector{
		loginPhrases: []string{
			"Continue with Google",
			"Continue with email",
			"Log in",
			"Sign up",
			"Create an account",
		},
		challengePhrases: []string{
			"Just a moment...",
			"Verify you are human",
			"checking your browser",
			"Enable JavaScript and cookies",
			"Ray ID:",
			"cloudflare",
		},
	}
}

// LoginWall reports whether content looks like a login page served instead of
// the real content. A single phrase match is enough; these phrases are rare
// in genuine long-form content.
func (d *Detector) LoginWall(content string) bool {
	for _, phrase := range d.loginPhrases {
		if strings.Contains(content, phrase) {
			return true
		}
	}
	return false
}

// Challenge reports whether content is a Cloudflare challenge page. At least
// two indicators must match to avoid false positives from content that
// incidentally mentions one of them.
func (d *Detector) Challenge(content string) bool {
	lower := strings.ToLower(content)
	matches := 0
	for _, phrase := range d.challengePhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			matches++
		}
	}
	return matches >= 2
}
