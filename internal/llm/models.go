package llm

import (
	"context"
	"strings"
	"sync"
)

// modelPreference describes how to pick a model from a provider listing.
// A model matching Family and Prefer wins over one matching Family alone.
type modelPreference struct {
	Family   string
	Prefer   string
	Prefix   string
	Fallback string
}

var (
	geminiModels    = modelPreference{Family: "gemini", Prefer: "flash", Prefix: "models/", Fallback: "gemini-1.5-flash-latest"}
	anthropicModels = modelPreference{Family: "claude", Prefer: "haiku", Fallback: "claude-3-5-haiku-latest"}
)

// pick returns the first listed name matching the preferred variant, then
// the first in the family, then the fallback. The result never carries
// the provider's resource prefix.
func (p modelPreference) pick(names []string) string {
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, p.Family) && strings.Contains(lower, p.Prefer) {
			return strings.TrimPrefix(name, p.Prefix)
		}
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), p.Family) {
			return strings.TrimPrefix(name, p.Prefix)
		}
	}
	return p.Fallback
}

// modelResolver memoizes model discovery. A configured model skips
// discovery entirely; a failed listing resolves to the fallback.
type modelResolver struct {
	configured string
	pref       modelPreference
	list       func(ctx context.Context) ([]string, error)

	mu       sync.Mutex
	resolved string
}

func (r *modelResolver) resolve(ctx context.Context) string {
	if r.configured != "" {
		return r.configured
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved != "" {
		return r.resolved
	}

	names, err := r.list(ctx)
	if err != nil {
		// Not memoized so a later call can still discover a better model
		return r.pref.Fallback
	}
	r.resolved = r.pref.pick(names)
	return r.resolved
}
