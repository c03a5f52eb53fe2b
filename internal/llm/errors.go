package llm

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNoAPIKey is wrapped by constructors when the provider needs a key.
var ErrNoAPIKey = errors.New("no API key configured")

// ErrorKind classifies provider failures
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindRateLimited
	// KindUnavailable means the provider cannot be reached at all: no
	// credentials, no CLI, or AI disabled
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate-limited"
	case KindUnavailable:
		return "unavailable"
	default:
		return "other"
	}
}

// Op names the request that failed
type Op string

const (
	OpConnect  Op = "connect"
	OpRewrite  Op = "rewrite"
	OpFeedback Op = "feedback"
	OpModels   Op = "list models"
)

// Error is a classified provider failure
type Error struct {
	Kind ErrorKind
	Op   Op
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Notice returns the short message shown to the reader in place of the
// AI output.
func (e *Error) Notice() string {
	switch e.Kind {
	case KindUnavailable:
		if errors.Is(e.Err, ErrNoAPIKey) {
			return "No API key configured"
		}
		return errorText(e.Err)
	case KindRateLimited:
		if e.Op == OpFeedback {
			return "Rate limit exceeded. Please wait 15-30 seconds and try again."
		}
		return "Rate limit - wait 15 seconds"
	}

	if e.Op == OpFeedback {
		return "Error: " + errorText(e.Err)
	}
	return "AI error: " + truncate(errorText(e.Err), 100)
}

// IsRateLimited reports whether err is a rate-limit failure
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRateLimited
}

// IsUnavailable reports whether err means the provider cannot be used
func IsUnavailable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnavailable
}

// classify wraps a raw provider error. statusRateLimited is the provider's
// own verdict from a typed error; the message is checked as a fallback.
func classify(op Op, err error, statusRateLimited bool) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}

	kind := KindOther
	if statusRateLimited || looksRateLimited(err.Error()) {
		kind = KindRateLimited
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func looksRateLimited(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "rate_limit")
}

func unavailable(err error) error {
	return &Error{Kind: KindUnavailable, Op: OpConnect, Err: err}
}

// errorText is the underlying message, without the Op prefix
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// truncate shortens s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
