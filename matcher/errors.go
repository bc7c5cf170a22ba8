package matcher

import "errors"

var (
	// ErrMissingSuffixHint indicates a variable-category pattern node without its
	// precomputed suffix hint; patterns have to be built by the corpus loader,
	// which attaches the hint, so this is an upstream construction bug rather
	// than an absence of a match
	ErrMissingSuffixHint = errors.New("variable pattern node missing suffix hint")

	// ErrEmptyFragments indicates an empty candidate fragment list
	ErrEmptyFragments = errors.New("pattern has no candidate fragments")
)
