package resolver

import "strings"

// axisProps maps padding/margin shorthand prefixes to the CSS properties they
// expand into. Axis shorthands (px, my, ...) produce multiple declarations
// sharing one resolved value.
var axisProps = map[string][]string{
	"p":  {"padding"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"},
	"pb": {"padding-bottom"},
	"pl": {"padding-left"},
	"pr": {"padding-right"},
	"m":  {"margin"},
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"},
	"mb": {"margin-bottom"},
	"ml": {"margin-left"},
	"mr": {"margin-right"},
}

// spacingValue resolves a spacing token: bracket literal passthrough, the
// literal "px" (1px), or a spacing-scale key. Returns "" when unresolvable.
func (r *Resolver) spacingValue(token string) string {
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return token[1 : len(token)-1]
	}
	if token == "px" {
		return "1px"
	}
	return r.theme.Spacing[token]
}

// spacingSpecs expands a padding/margin shorthand into its declarations.
func (r *Resolver) spacingSpecs(prefix, token string) []RuleSpec {
	props, ok := axisProps[prefix]
	if !ok {
		return nil
	}

	value := token
	if token != "auto" {
		value = r.spacingValue(token)
	}
	if value == "" {
		return nil
	}

	decls := make([]Declaration, len(props))
	for i, prop := range props {
		decls[i] = Declaration{Property: prop, Value: value}
	}
	return []RuleSpec{{Declarations: decls}}
}
