// Package resolver implements the class-name-to-CSS resolution engine: it
// decomposes a candidate class token into variant modifiers and a base
// utility, resolves the base utility through an ordered rule table backed by
// design-token tables, and returns the CSS declarations to emit.
package resolver

// Declaration is a single CSS "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// RuleSpec is the output of resolving one base utility: an optional selector
// suffix (pseudo-element or structural combinator) plus an ordered list of
// declarations. A base utility may resolve to zero, one, or several RuleSpecs.
type RuleSpec struct {
	SelectorSuffix string
	Declarations   []Declaration
}

// ParsedClass is a candidate class token decomposed into at most one variant
// prefix and a base utility. Stacked variants (md:hover:...) are not
// decomposed; the second prefix stays part of the base utility and resolves
// to nothing. This is a known limitation of the naming convention subset.
type ParsedClass struct {
	// Raw is the original class text, used to build the escaped selector.
	Raw string
	// Breakpoint is a recognized responsive-breakpoint key, or "".
	Breakpoint string
	// Pseudo is a recognized pseudo-state key, or "".
	Pseudo string
	// Base is the utility remaining after stripping at most one variant.
	Base string
}

// EmittedRule pairs a RuleSpec with the class that produced it. The assembler
// builds the final selector (escaped class + pseudo suffix + selector suffix)
// and media wrapper from it.
type EmittedRule struct {
	Class ParsedClass
	Spec  RuleSpec
}

// Resolution is the complete output of resolving one class token.
// SideEffects holds standalone CSS fragments (keyframes blocks) the utility
// requires; the assembler appends them once, de-duplicated by content.
//
// Resolutions are cached and shared; callers must not mutate them.
type Resolution struct {
	Rules       []EmittedRule
	SideEffects []string
}

// Empty reports whether the resolution produced no CSS at all.
func (r Resolution) Empty() bool {
	return len(r.Rules) == 0 && len(r.SideEffects) == 0
}
