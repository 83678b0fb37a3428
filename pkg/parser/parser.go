// Package parser manages tree-sitter parsers for the JavaScript and
// TypeScript grammars, with per-grammar pools sized to the machine so file
// scanning can parse concurrently.
package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/gnana997/utilcss/pkg/util"
)

// poolKey identifies one grammar variant.
type poolKey struct {
	lang Language
	tsx  bool
}

// Manager hands out parse trees for component sources. Pools are created
// lazily per grammar and the manager must be closed to free them. Callers own
// returned trees and must call tree.Close().
//
// Safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	pools  map[poolKey]*parserPool
	parses int

	logger *slog.Logger
}

// NewManager creates a Manager. Close it when done.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		pools:  make(map[poolKey]*parserPool),
		logger: logger,
	}
}

// Parse parses source with the given grammar. tsx selects the JSX-enabled
// TypeScript variant and is ignored for other languages.
//
// The returned tree must be closed by the caller.
func (m *Manager) Parse(source []byte, lang Language, tsx bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("cannot parse unknown language")
	}

	m.mu.Lock()
	m.parses++
	m.mu.Unlock()

	pool, err := m.getOrCreatePool(lang, tsx)
	if err != nil {
		return nil, err
	}

	parser, err := pool.acquire()
	if err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("parse returned nil tree")
	}

	// Partial trees are still useful for extraction; log and keep going.
	if tree.RootNode().HasError() {
		m.logger.Debug("parse tree contains errors", "language", lang.String())
	}

	return tree, nil
}

// ParseFile parses source with the grammar implied by the file extension.
func (m *Manager) ParseFile(source []byte, path string) (*ts.Tree, error) {
	lang := DetectLanguage(path)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", path)
	}
	return m.Parse(source, lang, IsTSXFile(path))
}

// Close frees all pooled parsers. The manager cannot be used afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, pool := range m.pools {
		pool.close()
	}
	m.pools = make(map[poolKey]*parserPool)
	return nil
}

// Stats reports parser usage.
type Stats struct {
	ParsersCreated int
	ParsesCalled   int
}

// GetStats returns cumulative parser usage.
func (m *Manager) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	created := 0
	for _, pool := range m.pools {
		created += pool.createdCount()
	}
	return Stats{ParsersCreated: created, ParsesCalled: m.parses}
}

func (m *Manager) getOrCreatePool(lang Language, tsx bool) (*parserPool, error) {
	key := poolKey{lang: lang, tsx: tsx}

	m.mu.RLock()
	pool, ok := m.pools[key]
	m.mu.RUnlock()
	if ok {
		return pool, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, ok = m.pools[key]; ok {
		return pool, nil
	}

	langPtr, err := grammarPointer(lang, tsx)
	if err != nil {
		return nil, err
	}

	pool = newParserPool(lang, langPtr, tsx, util.GetOptimalPoolSize(), m.logger)
	m.pools[key] = pool

	m.logger.Debug("created parser pool", "language", lang.String(), "tsx", tsx)
	return pool, nil
}

func grammarPointer(lang Language, tsx bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if tsx {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang.String())
	}
}
