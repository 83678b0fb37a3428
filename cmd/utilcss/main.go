package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "build":
		runBuild(os.Args[2:])
	case "resolve":
		runResolve(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version":
		fmt.Printf("utilcss %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: utilcss <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build      Scan project files and generate the utility stylesheet")
	fmt.Println("  resolve    Print the CSS generated for the given class names")
	fmt.Println("  serve      Start MCP server exposing resolution and token tools")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
