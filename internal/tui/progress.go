package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/termfolio/internal/archive"
	"github.com/gerunddev/termfolio/internal/styles"
)

// ImportMsg is sent when an import run finishes
type ImportMsg struct {
	Result *archive.Result
	Err    error
}

// progressModel shows a spinner while an import runs
type progressModel struct {
	spinner  spinner.Model
	status   string
	complete bool
	result   *archive.Result
	err      error
}

// InitProgressModel creates a new import progress model
func InitProgressModel(status string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.HighlightStyle

	return progressModel{
		spinner: s,
		status:  status,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case ImportMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if !m.complete {
		return fmt.Sprintf("\n%s %s\n\n", m.spinner.View(), m.status)
	}

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Import failed: "+m.err.Error()) + "\n"
	}

	took := styles.DimStyle.Render(fmt.Sprintf("Completed in %v", m.result.EndTime.Sub(m.result.StartTime).Round(time.Millisecond)))
	if len(m.result.Posts) == 0 && len(m.result.Errors) == 0 {
		return styles.SuccessStyle.Render("✓ Nothing to import") + "\n" + took + "\n"
	}

	line := styles.SuccessStyle.Render(fmt.Sprintf("✓ Imported %d post(s)", len(m.result.Posts)))
	if len(m.result.Errors) > 0 {
		line += ", " + styles.ErrorStyle.Render(fmt.Sprintf("%d error(s)", len(m.result.Errors)))
	}
	return line + "\n" + took + "\n"
}
