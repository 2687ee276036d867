package analysis

// NewWhitespaceAnalyzer creates an analyzer that splits text on Unicode white
// space without any normalization.
func NewWhitespaceAnalyzer() *FilterAnalyzer {
	return NewFilterAnalyzer(WhitespaceFilter{})
}
