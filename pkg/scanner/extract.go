package scanner

import (
	"regexp"
	"strings"
)

var (
	// classAttrRe captures the value of double-quoted class attributes in
	// static markup.
	classAttrRe = regexp.MustCompile(`class="([^"]+)"`)

	// validClassRe is the candidate charset. Anything outside it is
	// decorative markup noise, never a utility.
	validClassRe = regexp.MustCompile(`^[A-Za-z0-9_:\-/\[\]().,%]+$`)
)

// IsCandidate reports whether token may name a utility class.
func IsCandidate(token string) bool {
	return token != "" && validClassRe.MatchString(token)
}

// ExtractFromMarkup returns the candidate tokens found in class attributes of
// an HTML document, in document order, duplicates included.
func ExtractFromMarkup(src []byte) []string {
	var tokens []string
	for _, match := range classAttrRe.FindAllSubmatch(src, -1) {
		for _, token := range strings.Fields(string(match[1])) {
			if IsCandidate(token) {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}
