package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source grammar.
type Language int

const (
	LanguageTypeScript Language = iota
	LanguageJavaScript
	LanguageUnknown
)

func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectLanguage maps a file extension to its grammar. TSX files report
// TypeScript; the JSX dialect flag comes from IsTSXFile.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts", ".tsx":
		return LanguageTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}

// IsTSXFile reports whether path needs the TSX grammar variant.
func IsTSXFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tsx"
}

// IsJSXFile reports whether path is JSX (plain JavaScript grammar).
func IsJSXFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".jsx"
}
