package suggest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pthm/prosecheck/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRewriter struct {
	mu    sync.Mutex
	calls []rules.IssueType
	fn    func(issueType rules.IssueType, original string) (string, error)
}

func (f *fakeRewriter) Rewrite(_ context.Context, issueType rules.IssueType, original string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, issueType)
	f.mu.Unlock()
	return f.fn(issueType, original)
}

type rateLimitErr struct{}

func (rateLimitErr) Error() string  { return "429 RESOURCE_EXHAUSTED" }
func (rateLimitErr) Notice() string { return "Rate limit - wait 15 seconds" }

var (
	wordyIssue = rules.Issue{
		Type:     rules.Wordy,
		Category: rules.Conciseness,
		Original: "I did this in order to help.",
		Fallback: "I did this to help.",
	}
	passiveIssue = rules.Issue{
		Type:     rules.PassiveVoice,
		Category: rules.Clarity,
		Original: "The plan was approved.",
	}
)

func TestResolve(t *testing.T) {
	text, err := Resolve(wordyIssue)
	require.NoError(t, err)
	assert.Equal(t, "I did this to help.", text)

	_, err = Resolve(passiveIssue)
	assert.ErrorIs(t, err, ErrNoSuggestion)
}

func TestResolverWithoutRewriter(t *testing.T) {
	r := NewResolver(Options{})

	s := r.Resolve(context.Background(), wordyIssue)
	assert.Equal(t, "I did this to help.", s.Text)
	assert.Equal(t, SourceFallback, s.Source)
	assert.Empty(t, s.Notice)

	s = r.Resolve(context.Background(), passiveIssue)
	assert.False(t, s.HasText())
	assert.Equal(t, SourceNone, s.Source)
	assert.Equal(t, NoSuggestionHint, s.Notice)
}

func TestResolverRewriteOverridesFallback(t *testing.T) {
	rw := &fakeRewriter{fn: func(_ rules.IssueType, _ string) (string, error) {
		return "  I did this to help people.\n", nil
	}}
	r := NewResolver(Options{Rewriter: rw})

	s := r.Resolve(context.Background(), wordyIssue)
	assert.Equal(t, "I did this to help people.", s.Text)
	assert.Equal(t, SourceRewriter, s.Source)
	assert.Equal(t, []rules.IssueType{rules.Wordy}, rw.calls)
}

func TestResolverRewriteFailure(t *testing.T) {
	tests := []struct {
		name       string
		issue      rules.Issue
		err        error
		wantText   string
		wantSource Source
		wantNotice string
	}{
		{
			name:       "rate limited keeps fallback",
			issue:      wordyIssue,
			err:        rateLimitErr{},
			wantText:   "I did this to help.",
			wantSource: SourceFallback,
			wantNotice: "Rate limit - wait 15 seconds",
		},
		{
			name:       "other error without fallback",
			issue:      passiveIssue,
			err:        errors.New("boom"),
			wantSource: SourceNone,
			wantNotice: "AI error: boom",
		},
		{
			name:       "long error is truncated",
			issue:      passiveIssue,
			err:        errors.New(strings.Repeat("x", 150)),
			wantSource: SourceNone,
			wantNotice: "AI error: " + strings.Repeat("x", 100),
		},
		{
			name:       "truncation keeps whole runes",
			issue:      passiveIssue,
			err:        errors.New("x" + strings.Repeat("é", 60)),
			wantSource: SourceNone,
			wantNotice: "AI error: x" + strings.Repeat("é", 49),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := &fakeRewriter{fn: func(_ rules.IssueType, _ string) (string, error) {
				return "", tt.err
			}}
			s := NewResolver(Options{Rewriter: rw}).Resolve(context.Background(), tt.issue)

			assert.Equal(t, tt.wantText, s.Text)
			assert.Equal(t, tt.wantSource, s.Source)
			assert.Equal(t, tt.wantNotice, s.Notice)
		})
	}
}

func TestResolverEmptyRewrite(t *testing.T) {
	rw := &fakeRewriter{fn: func(_ rules.IssueType, _ string) (string, error) {
		return "   ", nil
	}}
	r := NewResolver(Options{Rewriter: rw})

	s := r.Resolve(context.Background(), wordyIssue)
	assert.Equal(t, SourceFallback, s.Source)

	s = r.Resolve(context.Background(), passiveIssue)
	assert.Equal(t, SourceNone, s.Source)
	assert.Equal(t, "No rewrite returned", s.Notice)
}

func TestResolveAllKeepsOrder(t *testing.T) {
	rw := &fakeRewriter{fn: func(_ rules.IssueType, original string) (string, error) {
		return strings.ToUpper(original), nil
	}}

	var started, resolved atomic.Int32
	r := NewResolver(Options{
		Rewriter:    rw,
		Concurrency: 3,
		OnStart:     func(rules.Issue) { started.Add(1) },
		OnResolved:  func() { resolved.Add(1) },
	})

	var issues []rules.Issue
	for _, s := range []string{"one.", "two.", "three.", "four.", "five."} {
		issues = append(issues, rules.Issue{Type: rules.Hedging, Original: s})
	}

	out := r.ResolveAll(context.Background(), issues)
	require.Len(t, out, len(issues))
	for i, s := range out {
		assert.Equal(t, strings.ToUpper(issues[i].Original), s.Text)
		assert.Equal(t, issues[i], s.Issue)
	}
	assert.Equal(t, int32(len(issues)), started.Load())
	assert.Equal(t, int32(len(issues)), resolved.Load())
}

func TestResolveAllEmpty(t *testing.T) {
	out := NewResolver(Options{}).ResolveAll(context.Background(), nil)
	assert.Empty(t, out)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "none", SourceNone.String())
	assert.Equal(t, "fallback", SourceFallback.String())
	assert.Equal(t, "ai", SourceRewriter.String())
}
