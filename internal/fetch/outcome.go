package fetch

import "fmt"

// Kind classifies why a fetch failed. The orchestrator branches on kinds
// rather than on error message wording.
type Kind int

const (
	// KindTransport covers HTTP error statuses, connection failures and
	// timeouts, including failed browser navigation.
	KindTransport Kind = iota
	// KindLoginWall means the retrieved payload is a login page served
	// instead of the real content; rendering may still recover it.
	KindLoginWall
	// KindChallenge means the page is a bot-challenge interstitial.
	KindChallenge
	// KindTooShort means extraction produced no meaningful content.
	KindTooShort
	// KindCapability means the headless-browser capability is unavailable.
	KindCapability
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindLoginWall:
		return "login-wall"
	case KindChallenge:
		return "challenge"
	case KindTooShort:
		return "too-short"
	case KindCapability:
		return "capability-missing"
	default:
		return "unknown"
	}
}

// Error is a failed fetch with a machine-checkable kind and a human-readable
// message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Outcome is the definitive result of fetching one URL. Exactly one of
// content-populated (Err == nil) or Err-populated holds.
type Outcome struct {
	Title   string
	Content string
	Err     *Error
}

// Success reports whether the fetch produced usable content.
func (o Outcome) Success() bool { return o.Err == nil }

// OK creates a successful outcome.
func OK(title, content string) Outcome {
	return Outcome{Title: title, Content: content}
}

// Fail creates a failed outcome with the given kind.
func Fail(kind Kind, format string, args ...any) Outcome {
	return Outcome{Err: &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}
