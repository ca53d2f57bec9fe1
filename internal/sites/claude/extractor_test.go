package claude

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	e := &Extractor{}

	assert.True(t, e.Match("https://claude.ai/share/abc-123"))
	assert.False(t, e.Match("https://claude.ai/chat/abc-123"))
	assert.False(t, e.Match("https://example.com/article"))
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Designing a cache - Claude", "Designing a cache"},
		{"Claude", "Claude Conversation"},
		{"Plain title", "Plain title"},
		{"  Spaced - Claude  ", "Spaced"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeTitle(tt.raw))
	}
}
