package rules

// Registry holds rules in the order they run
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the end of the run order
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules in run order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Detect runs every rule in order and concatenates their issues. The
// order across rules is the tie-break callers rely on when truncating.
func (r *Registry) Detect(ctx *AnalysisContext) []Issue {
	var issues []Issue
	for _, rule := range r.rules {
		issues = append(issues, rule.Run(ctx)...)
	}
	return issues
}

// DefaultRegistry returns a registry with the six style rules in their
// fixed detection order
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Clarity
	r.Register(&PassiveVoiceRule{MaxMatches: 2})
	r.Register(&LongSentenceRule{MaxWords: 30})

	// Conciseness
	r.Register(&WordyRule{})

	// Style
	r.Register(&ComplexWordsRule{})
	r.Register(&WeakWordsRule{})

	// Tone
	r.Register(&HedgingRule{})

	return r
}
