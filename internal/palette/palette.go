// Package palette implements the colon command line: routing to content files
// and a registry of small commands.
package palette

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/gerunddev/termfolio/internal/config"
)

// Sys is what commands may do to the editor
type Sys interface {
	OpenFile(name string)
	CloseBuffer()
	Print(markdown string)
	Alert(msg string)
	Theme() string
	SetTheme(name string)
}

// Command is a single entry in the registry
type Command struct {
	Name string
	Desc string
	Fn   func(args []string, sys Sys)
}

// Registry dispatches command lines to content files or commands
type Registry struct {
	files    []string
	links    []config.Link
	commands map[string]Command
	order    []string

	// Now is used by :date and can be replaced in tests
	Now func() time.Time
}

// NewRegistry creates a registry with the built-in commands
func NewRegistry(files []string, links []config.Link) *Registry {
	r := &Registry{
		files:    append([]string(nil), files...),
		links:    append([]config.Link(nil), links...),
		commands: make(map[string]Command),
		Now:      time.Now,
	}

	r.Register(Command{Name: "help", Desc: "Show this help menu", Fn: r.help})
	r.Register(Command{Name: "date", Desc: "Display current system time", Fn: r.date})
	r.Register(Command{Name: "socials", Desc: "List social media links", Fn: r.socials})
	r.Register(Command{Name: "whoami", Desc: "Display current user session", Fn: whoami})
	r.Register(Command{Name: "theme", Desc: "Cycle the color theme", Fn: cycleTheme})
	r.Register(Command{Name: "find", Desc: "Fuzzy find files and commands", Fn: r.find})
	r.Register(Command{Name: "clear", Desc: "Clear the current buffer", Fn: func(_ []string, sys Sys) {
		sys.Print("")
	}})
	r.Register(Command{Name: "q", Desc: "Close the current buffer", Fn: func(_ []string, sys Sys) {
		sys.CloseBuffer()
	}})

	return r
}

// Register adds or replaces a command. New commands are listed after existing ones.
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
}

// Commands returns the registered commands in registration order
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Files returns the routable content file names
func (r *Registry) Files() []string {
	return append([]string(nil), r.files...)
}

// IsFile reports whether name routes to a content file
func (r *Registry) IsFile(name string) bool {
	for _, f := range r.files {
		if f == name {
			return true
		}
	}
	return false
}

// Execute runs a command line such as ":help" or ":home".
// Content files take precedence over commands of the same name.
func (r *Registry) Execute(line string, sys Sys) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return
	}

	name, args := parts[0], parts[1:]

	if r.IsFile(name) {
		sys.OpenFile(name)
		return
	}

	if cmd, ok := r.commands[name]; ok {
		cmd.Fn(args, sys)
		return
	}

	sys.Alert(fmt.Sprintf("E492: Not an editor command: %s", name))
}

func (r *Registry) help(_ []string, sys Sys) {
	var b strings.Builder
	b.WriteString("# Available Commands\n\n")
	b.WriteString("Type `:command` to execute.\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, cmd := range r.Commands() {
		fmt.Fprintf(&b, "| `:%s` | %s |\n", cmd.Name, cmd.Desc)
	}

	if len(r.files) > 0 {
		names := make([]string, len(r.files))
		for i, f := range r.files {
			names[i] = "`:" + f + "`"
		}
		fmt.Fprintf(&b, "\nYou can also type file names like %s.\n", strings.Join(names, " or "))
	}

	sys.Print(b.String())
}

func (r *Registry) date(_ []string, sys Sys) {
	now := r.Now()
	zone, _ := now.Zone()

	sys.Print(fmt.Sprintf("# System Status\n\n- **Date:** %s\n- **Time:** %s\n- **Timezone:** %s (%s)\n",
		now.Format("2006-01-02"),
		now.Format("15:04:05"),
		now.Location(),
		zone))
}

func (r *Registry) socials(_ []string, sys Sys) {
	var b strings.Builder
	b.WriteString("# Social Uplinks\n\n")
	if len(r.links) == 0 {
		b.WriteString("No links configured.\n")
	}
	for _, link := range r.links {
		fmt.Fprintf(&b, "- [%s](%s)\n", link.Label, link.URL)
	}
	sys.Print(b.String())
}

func whoami(_ []string, sys Sys) {
	sys.Print("# User Session\n\n" +
		"**User:** visitor@internet\n\n" +
		"**Role:** Guest\n\n" +
		"**Access Level:** Read-Only\n\n" +
		"> \"I am a visitor, browsing this portfolio.\"\n")
}

func cycleTheme(_ []string, sys Sys) {
	next := config.NextTheme(sys.Theme())
	sys.SetTheme(next)
	sys.Alert("theme: " + strings.ToUpper(next))
}

// find lists fuzzy matches over files and commands. A single file match is opened directly.
func (r *Registry) find(args []string, sys Sys) {
	query := strings.Join(args, " ")

	candidates := append(r.Files(), r.order...)
	matches := Fuzzy(query, candidates)

	if len(matches) == 1 && r.IsFile(matches[0]) {
		sys.OpenFile(matches[0])
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Find: %s\n\n", query)
	if len(matches) == 0 {
		b.WriteString("No matches.\n")
	}
	for _, m := range matches {
		fmt.Fprintf(&b, "- `:%s`\n", m)
	}
	sys.Print(b.String())
}

// Fuzzy returns the candidates matching query as a case-insensitive
// subsequence, best match first. Equal scores keep input order.
// An empty query matches every candidate.
func Fuzzy(query string, candidates []string) []string {
	if strings.TrimSpace(query) == "" {
		return append([]string(nil), candidates...)
	}

	found := fuzzy.Find(query, candidates)
	out := make([]string, len(found))
	for i, m := range found {
		out[i] = m.Str
	}
	return out
}
