package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// parserPool is a channel-based pool of tree-sitter parsers sharing one
// grammar. Parsers are created lazily up to maxSize; acquire blocks once the
// pool is saturated until a parser is released.
type parserPool struct {
	pool    chan *ts.Parser
	langPtr unsafe.Pointer
	lang    Language
	tsx     bool
	maxSize int

	mu      sync.Mutex
	created int

	logger *slog.Logger
}

func newParserPool(lang Language, langPtr unsafe.Pointer, tsx bool, maxSize int, logger *slog.Logger) *parserPool {
	return &parserPool{
		pool:    make(chan *ts.Parser, maxSize),
		langPtr: langPtr,
		lang:    lang,
		tsx:     tsx,
		maxSize: maxSize,
		logger:  logger,
	}
}

func (p *parserPool) acquire() (*ts.Parser, error) {
	select {
	case parser := <-p.pool:
		return parser, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.maxSize {
		parser := ts.NewParser()
		if parser == nil {
			p.mu.Unlock()
			return nil, fmt.Errorf("create parser for %s", p.lang)
		}
		if err := parser.SetLanguage(ts.NewLanguage(p.langPtr)); err != nil {
			parser.Close()
			p.mu.Unlock()
			return nil, fmt.Errorf("set %s grammar: %w", p.lang, err)
		}
		p.created++
		p.mu.Unlock()
		return parser, nil
	}
	p.mu.Unlock()

	// Saturated: wait for a release.
	return <-p.pool, nil
}

func (p *parserPool) release(parser *ts.Parser) {
	if parser == nil {
		return
	}
	select {
	case p.pool <- parser:
	default:
		// Over-released parser has nowhere to go.
		parser.Close()
		p.logger.Warn("parser pool full, closing excess parser", "language", p.lang.String())
	}
}

func (p *parserPool) close() {
	close(p.pool)
	for parser := range p.pool {
		if parser != nil {
			parser.Close()
		}
	}
}

func (p *parserPool) createdCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created
}
