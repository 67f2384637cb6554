package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/termfolio/internal/archive"
	"github.com/gerunddev/termfolio/internal/config"
	"github.com/gerunddev/termfolio/internal/state"
	"github.com/gerunddev/termfolio/internal/styles"
	"github.com/gerunddev/termfolio/internal/tui"
)

// Import performs a one-shot import of the Jekyll archive
func Import(args []string) {
	dryRun := hasFlag(args, "--dry-run")

	if dryRun {
		fmt.Println(styles.TitleStyle.Render("termfolio import (DRY RUN)"))
	} else {
		fmt.Println(styles.TitleStyle.Render("termfolio import"))
	}
	fmt.Println()

	cfg := mustLoadConfig()

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state: " + err.Error())
	}

	fmt.Printf("%s → %s\n", styles.DimStyle.Render(cfg.ArchiveDir), styles.DimStyle.Render(cfg.ContentDir))
	if dryRun {
		fmt.Println(styles.DimStyle.Render("(dry run - no files will be written)"))
	}
	fmt.Println()

	log, cleanup := openLogger(cfg)
	defer cleanup()

	im := archive.NewImporter(cfg, st)
	im.SetLogger(log)
	im.SetDryRun(dryRun)

	done := make(chan *archive.Result, 1)
	p := tea.NewProgram(tui.InitProgressModel("Importing posts..."), tea.WithInput(os.Stdin))

	go func() {
		r, err := im.Import()
		done <- r
		p.Send(tui.ImportMsg{Result: r, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		fail("Error: " + err.Error())
	}

	var result *archive.Result
	select {
	case result = <-done:
	default:
		// interrupted before the import finished
		os.Exit(1)
	}
	if result == nil {
		os.Exit(1)
	}

	if !dryRun {
		if err := st.Save(config.StateFilePath()); err != nil {
			log.StateError("save", err)
			fail("Error saving state: " + err.Error())
		}
	}

	printResult(result)
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// printResult prints the converted posts as a table followed by the summary
func printResult(result *archive.Result) {
	if len(result.Posts) > 0 {
		fmt.Println(postTable(result.Posts))
		fmt.Println()
	}

	for _, err := range result.Errors {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
	}

	summary := result.String()
	if len(result.Errors) > 0 {
		fmt.Println(styles.WarningStyle.Render(summary))
	} else {
		fmt.Println(styles.SuccessStyle.Render("✓ " + summary))
	}
}

// postTable renders posts as a static table
func postTable(posts []archive.Post) string {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Slug", Width: 32},
		{Title: "Title", Width: 40},
	}

	rows := make([]table.Row, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, table.Row{p.Date, p.Slug, p.Title})
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(styles.Tokyo.Purple))
	s.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(s),
	)

	return styles.TableStyle.Render(t.View())
}

// Status displays the last import run and recent log activity
func Status() {
	fmt.Println(styles.TitleStyle.Render("termfolio status"))
	fmt.Println()

	cfg := mustLoadConfig()

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state: " + err.Error())
	}

	fmt.Printf("%s %s\n", styles.HeaderStyle.Render("Archive:"), cfg.ArchiveDir)
	fmt.Printf("%s %s\n", styles.HeaderStyle.Render("Content:"), cfg.ContentDir)
	fmt.Printf("%s %s\n", styles.HeaderStyle.Render("Tracked posts:"), strconv.Itoa(len(st.Files)))
	fmt.Println()

	if st.LastRun == nil {
		fmt.Println(styles.DimStyle.Render("No import has run yet. Run 'termfolio import'."))
	} else {
		run := st.LastRun
		fmt.Printf("%s %s (%s ago)\n",
			styles.HeaderStyle.Render("Last run:"),
			run.Finished.Format(time.DateTime),
			time.Since(run.Finished).Round(time.Second))
		fmt.Printf("  %s %d converted, %d skipped, %d errors\n",
			styles.DimStyle.Render(run.ID),
			run.Converted, run.Skipped, run.Errors)
	}

	if cfg.LogFile == "" {
		return
	}

	lines, lastImport, converted := ParseLogFile(cfg.LogFile, 10)
	fmt.Println()
	if !lastImport.IsZero() {
		fmt.Printf("%s %s, %d posts converted\n",
			styles.HeaderStyle.Render("Last logged import:"),
			lastImport.Format(time.DateTime), converted)
	}
	fmt.Println(styles.HeaderStyle.Render("Recent log:"))
	for _, line := range lines {
		fmt.Println(styles.DimStyle.Render("  " + line))
	}
}
