// Package stylesheet renders resolved utility classes into deterministic CSS
// text: one rule per line, in input order, with variant wrapping and
// side-effect de-duplication.
package stylesheet

import "strings"

// classEscaper escapes the characters a utility class may carry that are not
// valid in a bare CSS class selector.
var classEscaper = strings.NewReplacer(
	":", `\:`,
	"/", `\/`,
	".", `\.`,
	"%", `\%`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	",", `\,`,
	" ", `\ `,
)

// EscapeClass escapes a raw class name for use inside a CSS class selector.
// The leading "." is the caller's concern.
func EscapeClass(name string) string {
	return classEscaper.Replace(name)
}
