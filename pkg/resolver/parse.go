package resolver

import "strings"

// ParseClass splits a candidate token into an optional variant prefix and a
// base utility. The text before the first ":" is interpreted as a variant
// only when it is a recognized breakpoint or pseudo-state key; anything else
// stays part of the base utility. At most one variant prefix is recognized.
func (r *Resolver) ParseClass(token string) ParsedClass {
	pc := ParsedClass{Raw: token, Base: token}

	i := strings.Index(token, ":")
	if i < 0 {
		return pc
	}

	prefix, rest := token[:i], token[i+1:]
	if _, ok := r.theme.Breakpoints[prefix]; ok {
		pc.Breakpoint = prefix
		pc.Base = rest
		return pc
	}
	if _, ok := r.theme.PseudoStates[prefix]; ok {
		pc.Pseudo = prefix
		pc.Base = rest
		return pc
	}

	return pc
}
