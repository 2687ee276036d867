package analysis

// Filter classifies runes during tokenization.
//
// OnChar reports whether r ends the current token (separator) and whether it
// is also emitted as a token of its own (keep):
//
//	(false, false)  part of a token
//	(true,  false)  separator, discarded
//	(true,  true)   separator, emitted as a one-rune token
//
// (false, true) is invalid and treated as (false, false).
// Filters may hold state, but OnChar must return the same answer for the
// same rune for the lifetime of a scan.
type Filter interface {
	OnChar(r rune) (separator, keep bool)
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(r rune) (separator, keep bool)

// OnChar calls f(r).
func (f FilterFunc) OnChar(r rune) (separator, keep bool) {
	return f(r)
}
