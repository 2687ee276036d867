package analysis

// FilterAnalyzer tokenizes text with a FilteredTokenizer driven by a fixed Filter.
// The filter is shared across calls and must not be modified after construction.
type FilterAnalyzer struct {
	filter Filter
}

// NewFilterAnalyzer creates an analyzer that tokenizes with f.
func NewFilterAnalyzer(f Filter) *FilterAnalyzer {
	return &FilterAnalyzer{filter: f}
}

// Filter returns the analyzer's filter.
func (a *FilterAnalyzer) Filter() Filter {
	return a.filter
}

// Analyze returns every token of text. The field name is ignored.
func (a *FilterAnalyzer) Analyze(_ string, text string) []Token {
	return Tokenize(a.filter, text)
}
