package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/stylesheet"
	"github.com/gnana997/utilcss/pkg/util"
)

// runResolve prints the CSS generated for the class names given as
// arguments. Unknown classes produce nothing, matching build behavior.
func runResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	themePath := fs.String("theme", "", "theme JSON path (default: config or embedded theme)")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	classes := fs.Args()
	if len(classes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: utilcss resolve [--theme path] <class> [class...]")
		os.Exit(2)
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())

	path := *themePath
	if path == "" {
		if cfg, err := loadProjectConfig(); err == nil && cfg != nil {
			path = cfg.Theme
		}
	}

	th, err := loadTheme(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
		os.Exit(1)
	}

	res, err := resolver.New(th, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create resolver: %v\n", err)
		os.Exit(1)
	}

	resolutions := make([]resolver.Resolution, len(classes))
	for i, class := range classes {
		resolutions[i] = res.Resolve(class)
		if resolutions[i].Empty() {
			fmt.Fprintf(os.Stderr, "no rules for %q\n", class)
		}
	}

	css, _ := stylesheet.Assemble(th, resolutions)
	fmt.Print(css)
}
