package main

import (
	"flag"
	"fmt"
	"os"

	mcpserver "github.com/gnana997/utilcss/pkg/mcp"
	"github.com/gnana997/utilcss/pkg/mcplog"
	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/util"
)

// runServe starts the MCP server on stdin/stdout.
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	themePath := fs.String("theme", "", "theme JSON path (default: config or embedded theme)")
	logFile := fs.String("log-file", "", "JSONL tool-call log path (empty disables logging)")
	if err := fs.Parse(args); err != nil {
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

	callLog, err := mcplog.NewLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open tool-call log: %v\n", err)
		os.Exit(1)
	}
	if callLog != nil {
		defer callLog.Close()
	}

	srv := mcpserver.NewServer(th, res, callLog)
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
