package analysis

import (
	"iter"
	"unicode/utf8"
)

// FilteredTokenizer lazily splits an input string into tokens using a Filter.
//
// Tokens are produced one per call to Next, and only as much input is scanned
// as is needed to find the next token boundary. A FilteredTokenizer is a
// single-pass iterator and is not safe for concurrent use.
type FilteredTokenizer struct {
	filter Filter
	input  string

	byteOffset int
	charOffset int
	position   int
}

// NewFilteredTokenizer creates a tokenizer over input.
func NewFilteredTokenizer(f Filter, input string) *FilteredTokenizer {
	return &FilteredTokenizer{filter: f, input: input}
}

// Next returns the next token. It returns false once the input is exhausted,
// and keeps returning false on every later call.
func (t *FilteredTokenizer) Next() (Token, bool) {
	// chars counts the runes of content accumulated since the cursor.
	chars := 0

	for i := t.byteOffset; i < len(t.input); {
		r, size := utf8.DecodeRuneInString(t.input[i:])
		separator, keep := t.classify(r)
		if !separator {
			chars++
			i += size
			continue
		}

		// Separator directly at the cursor: consume it, and emit it if kept.
		if chars == 0 {
			t.byteOffset += size
			t.charOffset++
			if keep {
				tok := t.emit(t.input[i:t.byteOffset], t.charOffset-1)
				return tok, true
			}
			i = t.byteOffset
			continue
		}

		// Content followed by a separator. A kept separator stays in the
		// input and becomes the next token.
		tok := t.emit(t.input[t.byteOffset:i], t.charOffset)
		t.byteOffset = i
		t.charOffset += chars
		if !keep {
			t.byteOffset += size
			t.charOffset++
		}
		return tok, true
	}

	if t.byteOffset < len(t.input) {
		tok := t.emit(t.input[t.byteOffset:], t.charOffset)
		t.byteOffset = len(t.input)
		t.charOffset += chars
		return tok, true
	}
	return Token{}, false
}

// All returns an iterator over the remaining tokens.
func (t *FilteredTokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (t *FilteredTokenizer) classify(r rune) (separator, keep bool) {
	separator, keep = t.filter.OnChar(r)
	return separator, separator && keep
}

func (t *FilteredTokenizer) emit(term string, startOffset int) Token {
	tok := Token{
		Term:        term,
		StartOffset: startOffset,
		Position:    t.position,
	}
	t.position++
	return tok
}

// Tokenize returns all tokens f produces for input.
func Tokenize(f Filter, input string) []Token {
	var tokens []Token
	for tok := range NewFilteredTokenizer(f, input).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
