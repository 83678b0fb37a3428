package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/scanner"
	"github.com/gnana997/utilcss/pkg/stylesheet"
	"github.com/gnana997/utilcss/pkg/theme"
	"github.com/gnana997/utilcss/pkg/util"
)

type buildOptions struct {
	root      string
	output    string
	themePath string
	verbose   bool
}

func parseBuildFlags(args []string) (buildOptions, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	var opts buildOptions
	fs.StringVar(&opts.root, "root", "", "project root to scan (default: config or .)")
	fs.StringVar(&opts.output, "output", "", "output CSS path (default: config or "+defaultOutput+")")
	fs.StringVar(&opts.themePath, "theme", "", "theme JSON path (default: config or embedded theme)")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func runBuild(args []string) {
	opts, err := parseBuildFlags(args)
	if err != nil {
		os.Exit(2)
	}

	logCfg := util.DefaultLoggerConfig()
	if opts.verbose {
		logCfg.Level = util.LevelDebug
	}
	logger := util.NewLogger(logCfg)

	cfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read project config: %v\n", err)
		os.Exit(1)
	}

	count, output, err := executeBuild(opts, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d CSS rules -> %s\n", count, output)
}

// executeBuild runs the scan / resolve / assemble pipeline and writes the
// stylesheet. Returns the emitted rule count and the output path.
func executeBuild(opts buildOptions, cfg *ProjectConfig, logger *slog.Logger) (int, string, error) {
	var cfgRoot, cfgOutput, cfgTheme string
	scanCfg := scanner.DefaultScanConfig()
	if cfg != nil {
		cfgRoot, cfgOutput, cfgTheme = cfg.Root, cfg.Output, cfg.Theme
		if len(cfg.Include) > 0 {
			scanCfg.Include = cfg.Include
		}
		if len(cfg.Exclude) > 0 {
			scanCfg.Exclude = cfg.Exclude
		}
	}

	root := resolveSetting(opts.root, cfgRoot, defaultRoot)
	output := resolveSetting(opts.output, cfgOutput, defaultOutput)
	themePath := resolveSetting(opts.themePath, cfgTheme, "")

	th, err := loadTheme(themePath)
	if err != nil {
		return 0, "", err
	}

	sc := scanner.New(scanCfg, logger)
	defer sc.Close()

	tokens, stats, err := sc.Scan(root)
	if err != nil {
		return 0, "", fmt.Errorf("scan %s: %w", root, err)
	}
	logger.Info("scan complete",
		"files_scanned", stats.FilesScanned,
		"files_failed", stats.FilesFailed,
		"candidates", stats.TokensFound)

	res, err := resolver.New(th, logger)
	if err != nil {
		return 0, "", err
	}

	resolutions := make([]resolver.Resolution, len(tokens))
	for i, token := range tokens {
		resolutions[i] = res.Resolve(token)
	}

	css, count := stylesheet.Assemble(th, resolutions)

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(css), 0644); err != nil {
		return 0, "", fmt.Errorf("write stylesheet: %w", err)
	}

	return count, output, nil
}

// loadTheme loads the theme at path, or the embedded default when path is
// empty.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.Default()
	}
	return theme.LoadFromFile(path)
}
