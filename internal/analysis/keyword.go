package analysis

// NewKeywordAnalyzer creates an analyzer that passes the entire input through
// as a single token.
func NewKeywordAnalyzer() *FilterAnalyzer {
	return NewFilterAnalyzer(KeywordFilter{})
}
