package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/termfolio/internal/commands"
	"github.com/gerunddev/termfolio/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "import":
		commands.Import(os.Args[2:])
	case "watch":
		commands.Watch(os.Args[2:])
	case "status":
		commands.Status()
	case "diff":
		commands.Diff(os.Args[2:])
	case "meta":
		commands.Meta(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "view", "open":
		commands.View()
	case "version", "-v", "--version":
		fmt.Printf("termfolio v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`termfolio - Terminal portfolio and Jekyll archive importer

Usage:
  termfolio <command> [options]

Commands:
  convert     Convert one Jekyll post to plain markdown (--out file, --html)
  import      Import the Jekyll archive into content (use --dry-run to preview)
  watch       Re-import the archive on an interval until interrupted
  status      Display the last import run and recent log activity
  diff        Show how a post changes when converted (--plain for raw diff)
  meta        Print a post's frontmatter
  preview     Render a converted post in the terminal
  view        Open the content pager
  version     Show version information
  help        Show this help message

Examples:
  termfolio convert _posts/2021-03-04-hello.md
  termfolio convert _posts/2021-03-04-hello.md --html --out hello.html
  termfolio import --dry-run
  termfolio watch --interval 1m
  termfolio diff _posts/2021-03-04-hello.md
  termfolio view

Configuration:
  Config file: %s
  State file:  %s
  Env file:    %s (TERMFOLIO_* overrides)
`, config.ConfigPath(), config.StateFilePath(), config.EnvFile)
	fmt.Print(usage)
}
