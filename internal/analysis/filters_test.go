package analysis

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type classification struct {
	separator bool
	keep      bool
}

func classify(f Filter, r rune) classification {
	s, k := f.OnChar(r)
	return classification{s, k}
}

var (
	content = classification{false, false}
	dropped = classification{true, false}
	kept    = classification{true, true}
)

func TestWhitespaceFilter(t *testing.T) {
	f := WhitespaceFilter{}
	for _, r := range " \t\n\r\f\v\u00a0\u2003\u3000" {
		assert.Equal(t, dropped, classify(f, r), "rune %U", r)
	}
	for _, r := range "a!,_é日" {
		assert.Equal(t, content, classify(f, r), "rune %U", r)
	}
}

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter{}
	for _, r := range DefaultDropChars {
		assert.Equal(t, dropped, classify(f, r), "rune %U", r)
	}
	for _, r := range DefaultKeepChars {
		assert.Equal(t, kept, classify(f, r), "rune %U", r)
	}
	for _, r := range "aZ09é\v\u00a0$" {
		assert.Equal(t, content, classify(f, r), "rune %U", r)
	}
	assert.Equal(t, 34, utf8.RuneCountInString(DefaultKeepChars))
}

func TestSetAndTableFilters_Agree(t *testing.T) {
	set := NewSetFilter(DefaultKeepChars, DefaultDropChars)
	table := NewTableFilter(DefaultKeepChars, DefaultDropChars)
	def := DefaultFilter{}

	for r := rune(0); r < 0x2100; r++ {
		want := classify(def, r)
		assert.Equal(t, want, classify(set, r), "set filter rune %U", r)
		assert.Equal(t, want, classify(table, r), "table filter rune %U", r)
	}
}

func TestSetFilter_KeepWins(t *testing.T) {
	f := NewSetFilter("-", "- ")
	assert.Equal(t, kept, classify(f, '-'))
	assert.Equal(t, dropped, classify(f, ' '))
	assert.Equal(t, content, classify(f, 'a'))
}

func TestTableFilter_Growth(t *testing.T) {
	f := &TableFilter{}
	assert.Equal(t, content, classify(f, 'a'))

	f.AddDrop(' ')
	f.AddKeep('″')
	assert.Len(t, f.keep, int('″')+1)
	assert.Len(t, f.drop, int(' ')+1)

	f.AddKeep('!')
	assert.Len(t, f.keep, int('″')+1, "adding a smaller rune must not shrink the table")

	assert.Equal(t, kept, classify(f, '″'))
	assert.Equal(t, kept, classify(f, '!'))
	assert.Equal(t, dropped, classify(f, ' '))
	assert.Equal(t, content, classify(f, '日'))
	assert.Equal(t, content, classify(f, -1))
}

func TestKeywordFilter(t *testing.T) {
	for _, r := range " !a\n" {
		assert.Equal(t, content, classify(KeywordFilter{}, r))
	}
}
