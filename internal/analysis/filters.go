package analysis

import "unicode"

// Default character sets used by DefaultFilter.
const (
	DefaultDropChars = " \t\n\r\f"
	DefaultKeepChars = "#!\\\"%&'()*+,-./:;<=>?@[]^_`{|}~“”″"
)

// WhitespaceFilter separates on Unicode white space and discards it.
type WhitespaceFilter struct{}

// OnChar implements Filter.
func (WhitespaceFilter) OnChar(r rune) (bool, bool) {
	return unicode.IsSpace(r), false
}

// KeywordFilter never separates, so the whole input becomes one token.
type KeywordFilter struct{}

// OnChar implements Filter.
func (KeywordFilter) OnChar(rune) (bool, bool) {
	return false, false
}

// DefaultFilter discards ASCII white space and emits punctuation and
// typographic quotes as tokens of their own.
type DefaultFilter struct{}

// OnChar implements Filter.
func (DefaultFilter) OnChar(r rune) (bool, bool) {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true, false
	case '#', '!', '\\', '"', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.',
		'/', ':', ';', '<', '=', '>', '?', '@', '[', ']', '^', '_', '`', '{',
		'|', '}', '~', '“', '”', '″':
		return true, true
	default:
		return false, false
	}
}

// SetFilter classifies runes using two hash sets. Runes in Keep are emitted
// as tokens, runes in Drop are discarded. A rune present in both is kept.
type SetFilter struct {
	Keep map[rune]struct{}
	Drop map[rune]struct{}
}

// NewSetFilter creates a SetFilter from the runes of keep and drop.
func NewSetFilter(keep, drop string) *SetFilter {
	f := &SetFilter{
		Keep: make(map[rune]struct{}),
		Drop: make(map[rune]struct{}),
	}
	for _, r := range keep {
		f.Keep[r] = struct{}{}
	}
	for _, r := range drop {
		f.Drop[r] = struct{}{}
	}
	return f
}

// OnChar implements Filter.
func (f *SetFilter) OnChar(r rune) (bool, bool) {
	_, keep := f.Keep[r]
	if keep {
		return true, true
	}
	_, drop := f.Drop[r]
	return drop, false
}

// TableFilter classifies runes with two boolean tables indexed by code point.
// Each table is only as long as its largest rune, so most lookups are
// answered by the length check without touching the table.
type TableFilter struct {
	keep []bool
	drop []bool
}

// NewTableFilter creates a TableFilter from the runes of keep and drop.
func NewTableFilter(keep, drop string) *TableFilter {
	f := &TableFilter{}
	for _, r := range keep {
		f.AddKeep(r)
	}
	for _, r := range drop {
		f.AddDrop(r)
	}
	return f
}

// AddKeep marks r as a separator that is emitted as a token.
func (f *TableFilter) AddKeep(r rune) {
	f.keep = setIndex(f.keep, r)
}

// AddDrop marks r as a separator that is discarded.
func (f *TableFilter) AddDrop(r rune) {
	f.drop = setIndex(f.drop, r)
}

// OnChar implements Filter.
func (f *TableFilter) OnChar(r rune) (bool, bool) {
	if r < 0 {
		return false, false
	}
	i := int(r)
	if i < len(f.keep) && f.keep[i] {
		return true, true
	}
	return i < len(f.drop) && f.drop[i], false
}

func setIndex(table []bool, r rune) []bool {
	if r < 0 {
		return table
	}
	i := int(r)
	if i >= len(table) {
		grown := make([]bool, i+1)
		copy(grown, table)
		table = grown
	}
	table[i] = true
	return table
}
