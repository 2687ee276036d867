package analysis

// NewDefaultAnalyzer creates an analyzer that discards ASCII white space and
// emits each punctuation character as its own token.
func NewDefaultAnalyzer() *FilterAnalyzer {
	return NewFilterAnalyzer(DefaultFilter{})
}
