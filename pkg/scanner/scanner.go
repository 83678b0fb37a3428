// Package scanner discovers markup and component files under a project root
// and extracts candidate utility class tokens from them. HTML is scanned with
// a class-attribute matcher; JS/TS sources are parsed and their className
// attributes read from the syntax tree.
package scanner

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gnana997/utilcss/pkg/doccache"
	"github.com/gnana997/utilcss/pkg/parser"
	"github.com/gnana997/utilcss/pkg/util"
)

// Scanner extracts candidate class tokens from project files.
// Safe for concurrent use; Close releases parser and document resources.
type Scanner struct {
	cfg     ScanConfig
	parsers *parser.Manager
	docs    *doccache.Cache
	logger  *slog.Logger
}

// New creates a Scanner with the given config.
func New(cfg ScanConfig, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		cfg:     cfg,
		parsers: parser.NewManager(logger),
		docs:    doccache.New(logger),
		logger:  logger,
	}
}

// Close releases pooled parsers and mapped documents.
func (s *Scanner) Close() error {
	err := s.parsers.Close()
	if derr := s.docs.Close(); err == nil {
		err = derr
	}
	return err
}

// Scan walks root and returns the sorted set of distinct candidate tokens.
// Unreadable files are counted in stats and skipped; a candidate that later
// resolves to nothing costs nothing, so extraction stays permissive.
func (s *Scanner) Scan(root string) ([]string, ScanStats, error) {
	files, err := Discover(root, s.cfg)
	if err != nil {
		return nil, ScanStats{}, err
	}

	var (
		mu    sync.Mutex
		seen  = make(map[string]struct{})
		stats ScanStats
	)

	workers := util.GetOptimalPoolSizeWithOverride(s.cfg.Workers)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			tokens, ok := s.scanFile(path)

			mu.Lock()
			defer mu.Unlock()
			if !ok {
				stats.FilesFailed++
				return
			}
			stats.FilesScanned++
			for _, token := range tokens {
				seen[token] = struct{}{}
			}
		}(path)
	}
	wg.Wait()

	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	sort.Strings(out)
	stats.TokensFound = len(out)

	s.logger.Debug("scan complete",
		"files_scanned", stats.FilesScanned,
		"files_failed", stats.FilesFailed,
		"tokens", stats.TokensFound)

	return out, stats, nil
}

func (s *Scanner) scanFile(path string) ([]string, bool) {
	data, err := s.docs.ReadFile(path)
	if err != nil {
		s.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return nil, false
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractFromMarkup(data), true
	}

	if parser.DetectLanguage(path) == parser.LanguageUnknown {
		return nil, true
	}

	tree, err := s.parsers.ParseFile(data, path)
	if err != nil {
		s.logger.Debug("skipping unparseable file", "path", path, "error", err)
		return nil, false
	}
	defer tree.Close()

	return ExtractFromScript(tree, data), true
}
