package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Corpus is a few paragraphs of English prose with mixed punctuation,
// used by benchmarks.
const Corpus = "Full-text search is a technique for searching documents stored in a database. " +
	"It involves indexing the content of documents and building inverted indexes that map " +
	"terms to the documents containing them. Modern search engines use sophisticated ranking " +
	"algorithms (like BM25) to estimate the relevance of documents to a given query; the " +
	"\"analysis\" step, which splits text into terms, runs before any of that happens.\n\n" +
	"Tokenizers differ in what they treat as a boundary: white space, punctuation such as " +
	"'.', ',' or '?', and typographic quotes like “these” or a 12″ ruler. Some keep the " +
	"punctuation as tokens of its own; others drop it entirely. In version 2.0, the editor-in-chief " +
	"of the project's docs wrote: \"pick the filter that matches your query syntax & your users' " +
	"expectations\" - advice that is still useful today, e.g. for e-mail addresses (user@example.com), " +
	"paths like /usr/local/bin, or expressions such as a*b+c=d."

// SampleTexts returns short inputs covering ASCII, multi-byte text and
// separator-only strings.
func SampleTexts() []string {
	return []string{
		"",
		"hello world",
		"hello! !world this!is some text",
		"hello!world, this is some_text",
		"“quoted” 12″ — naïve café",
		"日本語のテキスト、です。",
		"   \t\n  ",
		"!!!???",
	}
}

// WriteTempFile writes content to name inside a fresh temporary directory
// and returns the file's path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
