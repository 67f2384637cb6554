package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gerunddev/termfolio/internal/config"
	"github.com/gerunddev/termfolio/internal/logger"
	"github.com/gerunddev/termfolio/internal/styles"
)

// ParseLogFile reads the last N lines from the log file and extracts import info
func ParseLogFile(logPath string, maxLines int) ([]string, time.Time, int) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, time.Time{}, 0
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	var lastImport time.Time
	postsConverted := 0

	// Look for most recent "import completed" line
	// Format: 2025-11-27 14:11:57 INFO import completed run_id=... posts_converted=3
	for i := len(recentLines) - 1; i >= 0; i-- {
		line := recentLines[i]
		if !strings.Contains(line, "import completed") {
			continue
		}

		if len(line) > 19 {
			if t, err := time.ParseInLocation(time.DateTime, line[:19], time.Local); err == nil {
				lastImport = t
			}
		}

		if idx := strings.Index(line, "posts_converted="); idx != -1 {
			_, _ = fmt.Sscanf(line[idx:], "posts_converted=%d", &postsConverted) //nolint:errcheck // best effort parsing
		}
		break
	}

	return recentLines, lastImport, postsConverted
}

// flagValue returns the value following name in args
func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), true
		}
	}
	return "", false
}

// hasFlag reports whether name appears in args
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// positional returns args that are neither flags nor flag values.
// valueFlags lists the flags that take a value.
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			for _, f := range valueFlags {
				if arg == f {
					i++
					break
				}
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// mustLoadConfig loads configuration or exits
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config: " + err.Error())
	}
	return cfg
}

// openLogger returns a file logger for cfg, or a discarding one if the file cannot be opened
func openLogger(cfg *config.Config) (*logger.Logger, func()) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}
	}

	l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("Warning: logging disabled: "+err.Error()))
		return logger.Discard(), func() {}
	}
	return l, cleanup
}

// fail prints msg as an error and exits
func fail(msg string) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+msg))
	os.Exit(1)
}
