package analysis

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrAnalyzerNotFound is returned when no analyzer has the requested name.
	ErrAnalyzerNotFound = errors.New("analyzer not found")
	// ErrAnalyzerExists is returned when registering a name twice.
	ErrAnalyzerExists = errors.New("analyzer already registered")
)

// Built-in analyzer names.
const (
	DefaultAnalyzerName    = "default"
	WhitespaceAnalyzerName = "whitespace"
	KeywordAnalyzerName    = "keyword"
)

// Registry manages analyzer instances by name.
type Registry struct {
	analyzers map[string]Analyzer
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in analyzers registered.
func NewRegistry() *Registry {
	r := &Registry{
		analyzers: make(map[string]Analyzer),
	}
	r.analyzers[DefaultAnalyzerName] = NewDefaultAnalyzer()
	r.analyzers[WhitespaceAnalyzerName] = NewWhitespaceAnalyzer()
	r.analyzers[KeywordAnalyzerName] = NewKeywordAnalyzer()
	return r
}

// Get returns the analyzer registered under the given name.
func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAnalyzerNotFound, name)
	}
	return a, nil
}

// Register adds a custom analyzer to the registry.
func (r *Registry) Register(name string, a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.analyzers[name]; exists {
		return fmt.Errorf("%w: %q", ErrAnalyzerExists, name)
	}
	r.analyzers[name] = a
	return nil
}

// Names returns the names of all registered analyzers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
