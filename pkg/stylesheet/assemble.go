package stylesheet

import (
	"strings"

	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/theme"
)

// Assemble renders resolutions into a stylesheet, one rule per line, in input
// order. Breakpoint variants wrap the rule in a min-width media query.
// Side-effect fragments are de-duplicated in first-seen order and appended
// after the class rules. Returns the stylesheet text and the number of class
// rules emitted, side effects excluded.
func Assemble(th *theme.Theme, resolutions []resolver.Resolution) (string, int) {
	var b strings.Builder
	count := 0

	seen := make(map[string]struct{})
	var effects []string

	for _, res := range resolutions {
		for _, er := range res.Rules {
			b.WriteString(renderRule(th, er))
			b.WriteByte('\n')
			count++
		}
		for _, eff := range res.SideEffects {
			if _, dup := seen[eff]; dup {
				continue
			}
			seen[eff] = struct{}{}
			effects = append(effects, eff)
		}
	}

	for _, eff := range effects {
		b.WriteString(eff)
		b.WriteByte('\n')
	}

	return b.String(), count
}

func renderRule(th *theme.Theme, er resolver.EmittedRule) string {
	var sb strings.Builder
	sb.WriteByte('.')
	sb.WriteString(EscapeClass(er.Class.Raw))
	if er.Class.Pseudo != "" {
		sb.WriteString(th.PseudoStates[er.Class.Pseudo])
	}
	sb.WriteString(er.Spec.SelectorSuffix)
	sb.WriteString(" {")
	for i, d := range er.Spec.Declarations {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
	}
	sb.WriteByte('}')

	line := sb.String()
	if er.Class.Breakpoint != "" {
		line = "@media (min-width: " + th.Breakpoints[er.Class.Breakpoint] + ") {" + line + "}"
	}
	return line
}
