package scanner

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// ExtractFromScript walks a JS/TS parse tree and returns candidate tokens
// from string-valued className and class JSX attributes. Expression values
// (template literals, helper calls) are ignored; only literal strings are
// statically resolvable.
func ExtractFromScript(tree *ts.Tree, source []byte) []string {
	var tokens []string
	walkAttributes(tree.RootNode(), source, &tokens)
	return tokens
}

func walkAttributes(node *ts.Node, source []byte, tokens *[]string) {
	if node.Kind() == "jsx_attribute" {
		if value, ok := classAttributeValue(node, source); ok {
			for _, token := range strings.Fields(value) {
				if IsCandidate(token) {
					*tokens = append(*tokens, token)
				}
			}
		}
		return
	}

	for i := uint(0); i < uint(node.ChildCount()); i++ {
		walkAttributes(node.Child(i), source, tokens)
	}
}

// classAttributeValue returns the literal string value of a className/class
// attribute node, or ok=false for other attributes and expression values.
func classAttributeValue(attr *ts.Node, source []byte) (string, bool) {
	var name, value string
	hasString := false

	for i := uint(0); i < uint(attr.ChildCount()); i++ {
		child := attr.Child(i)
		switch child.Kind() {
		case "property_identifier":
			name = child.Utf8Text(source)
		case "string":
			value = stringContent(child, source)
			hasString = true
		}
	}

	if !hasString || (name != "className" && name != "class") {
		return "", false
	}
	return value, true
}

// stringContent returns the text inside a string node without its quotes.
func stringContent(node *ts.Node, source []byte) string {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Kind() == "string_fragment" {
			return child.Utf8Text(source)
		}
	}
	text := node.Utf8Text(source)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}
