package analysis

// Token represents a single token produced by a tokenizer.
//
// Term is a substring of the tokenized input and shares its storage.
type Token struct {
	Term string `json:"term"`
	// StartOffset is the index of the token's first rune, counted in runes.
	StartOffset int `json:"start_offset"`
	// Position counts every token emitted before this one in the same scan.
	Position int `json:"position"`
}

// String returns the token's term.
func (t Token) String() string {
	return t.Term
}

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for concurrent use; each call scans independently.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	Analyze(field string, text string) []Token
}
