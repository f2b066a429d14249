package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mrlokans/readtracker/internal/cli"
	"github.com/mrlokans/readtracker/internal/config"
	"github.com/mrlokans/readtracker/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("WARNING: failed to load .env: %v", err)
	}

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd cli.Command
	switch command {
	case "add-book":
		cmd = cli.NewAddBookCommand()
	case "progress":
		cmd = cli.NewProgressCommand()
	case "finish":
		cmd = cli.NewFinishCommand()
	case "add-article":
		cmd = cli.NewAddArticleCommand()
	case "mark-read":
		cmd = cli.NewMarkReadCommand()
	case "list":
		cmd = cli.NewListCommand()
	case "stats":
		cmd = cli.NewStatsCommand()
	case "export":
		cmd = cli.NewExportCommand()
	case "version":
		fmt.Printf("readtracker %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve        Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  add-book     Add a book to the reading list\n")
	fmt.Fprintf(os.Stderr, "  progress     Record pages read in a book\n")
	fmt.Fprintf(os.Stderr, "  finish       Mark a book as finished\n")
	fmt.Fprintf(os.Stderr, "  add-article  Save an article to read later\n")
	fmt.Fprintf(os.Stderr, "  mark-read    Mark an article as read\n")
	fmt.Fprintf(os.Stderr, "  list         List books or articles\n")
	fmt.Fprintf(os.Stderr, "  stats        Show summary counts and recent activity\n")
	fmt.Fprintf(os.Stderr, "  export       Write the markdown and xlsx reading report\n")
	fmt.Fprintf(os.Stderr, "  version      Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
