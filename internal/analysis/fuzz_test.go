package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"FilterTok/internal/testutil"
)

// checkTokens verifies the invariants every scan must hold: positions count
// up from zero, offsets never decrease, no term is empty, each term sits at
// its offset, and the terms plus the discarded separators rebuild the input.
func checkTokens(t *testing.T, f Filter, input string, tokens []Token) {
	t.Helper()

	var runeStarts []int
	var rebuilt strings.Builder
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		runeStarts = append(runeStarts, i)
		if sep, keep := f.OnChar(r); !sep || keep {
			rebuilt.WriteString(input[i : i+size])
		}
		i += size
	}

	var joined strings.Builder
	prevOffset := 0
	for i, tok := range tokens {
		if tok.Position != i {
			t.Errorf("token %d position = %d, want %d", i, tok.Position, i)
		}
		if tok.Term == "" {
			t.Errorf("token %d has an empty term", i)
		}
		if tok.StartOffset < prevOffset {
			t.Errorf("token %d offset %d is before previous offset %d", i, tok.StartOffset, prevOffset)
		}
		prevOffset = tok.StartOffset
		if tok.StartOffset >= len(runeStarts) {
			t.Errorf("token %d offset %d past end of input (%d runes)", i, tok.StartOffset, len(runeStarts))
			continue
		}
		if !strings.HasPrefix(input[runeStarts[tok.StartOffset]:], tok.Term) {
			t.Errorf("token %d term %q not found at rune offset %d", i, tok.Term, tok.StartOffset)
		}
		joined.WriteString(tok.Term)
	}

	if joined.String() != rebuilt.String() {
		t.Errorf("tokens rebuild %q, want %q", joined.String(), rebuilt.String())
	}
}

func FuzzDefaultFilter(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("hello-world foo_bar!!!")
	f.Add("“quoted” 12″ \xff\xfe")

	f.Fuzz(func(t *testing.T, input string) {
		filter := DefaultFilter{}
		tokens := Tokenize(filter, input)
		checkTokens(t, filter, input, tokens)

		again := Tokenize(filter, input)
		if len(again) != len(tokens) {
			t.Fatalf("rescan produced %d tokens, want %d", len(again), len(tokens))
		}
		for i := range tokens {
			if again[i] != tokens[i] {
				t.Errorf("rescan token %d = %+v, want %+v", i, again[i], tokens[i])
			}
		}
	})
}

func FuzzWhitespaceFilter(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("\t\n\r mixed whitespace　here")

	f.Fuzz(func(t *testing.T, input string) {
		filter := WhitespaceFilter{}
		checkTokens(t, filter, input, Tokenize(filter, input))
	})
}

func FuzzTableFilter(f *testing.F) {
	f.Add("a,b;c", ",", ";")
	f.Add("日本語", "本", "")
	f.Add("", "", "")

	f.Fuzz(func(t *testing.T, input, keep, drop string) {
		filter := NewTableFilter(keep, drop)
		checkTokens(t, filter, input, Tokenize(filter, input))
	})
}

func TestFilters_SampleTexts(t *testing.T) {
	filters := map[string]Filter{
		"default":    DefaultFilter{},
		"whitespace": WhitespaceFilter{},
		"keyword":    KeywordFilter{},
		"set":        NewSetFilter(DefaultKeepChars+"、。", DefaultDropChars),
		"table":      NewTableFilter(DefaultKeepChars+"、。", DefaultDropChars),
	}
	texts := append(testutil.SampleTexts(), testutil.Corpus)

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			for _, text := range texts {
				checkTokens(t, f, text, Tokenize(f, text))
			}
		})
	}
}
