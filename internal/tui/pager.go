package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/termfolio/internal/palette"
	"github.com/gerunddev/termfolio/internal/render"
	"github.com/gerunddev/termfolio/internal/styles"
)

// Loader returns the markdown for a content file name
type Loader func(name string) (string, error)

// PagerOptions configures the pager
type PagerOptions struct {
	Title     string
	StartPage string
	Theme     string
	Registry  *palette.Registry
	Load      Loader
	OnTheme   func(name string) // called after :theme switches themes
}

// session is the editor state commands act on. It implements palette.Sys.
type session struct {
	registry *palette.Registry
	buffers  palette.Buffers
	load     Loader
	onTheme  func(string)

	theme   string
	content string
	label   string
	alert   string
	quit    bool
}

func (s *session) OpenFile(name string) {
	text, err := s.load(name)
	if err != nil {
		s.content = fmt.Sprintf("# Error 404: %s.md not found", name)
		return
	}

	s.buffers.Open(name)
	s.content = text
	s.label = name + ".md"
}

func (s *session) CloseBuffer() {
	if len(s.buffers.List()) == 0 {
		s.quit = true
		return
	}

	next := s.buffers.Close(s.buffers.Current())
	if next == "" {
		s.content = ""
		s.label = "[No Name]"
		return
	}
	s.OpenFile(next)
}

func (s *session) Print(markdown string) {
	s.buffers.Detach()
	s.content = markdown
	s.label = "[Command Output]"
}

func (s *session) Alert(msg string) {
	s.alert = msg
}

func (s *session) Theme() string {
	return s.theme
}

func (s *session) SetTheme(name string) {
	s.theme = name
	if s.onTheme != nil {
		s.onTheme(name)
	}
}

// pagerModel is the Bubble Tea model for the content pager
type pagerModel struct {
	s           *session
	title       string
	viewport    viewport.Model
	input       textinput.Model
	commandMode bool
	width       int
	height      int
}

// InitPagerModel creates the pager and opens the start page
func InitPagerModel(opts PagerOptions) pagerModel {
	s := &session{
		registry: opts.Registry,
		load:     opts.Load,
		onTheme:  opts.OnTheme,
		theme:    opts.Theme,
		label:    "[No Name]",
	}

	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 256

	m := pagerModel{
		s:        s,
		title:    opts.Title,
		viewport: viewport.New(render.DefaultWidth, 20),
		input:    ti,
	}

	if opts.StartPage != "" {
		s.OpenFile(opts.StartPage)
	}
	m.refresh()

	return m
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.commandMode {
			switch msg.String() {
			case "enter":
				line := m.input.Value()
				m.leaveCommandMode()
				m.s.alert = ""
				m.s.registry.Execute(line, m.s)
				if m.s.quit {
					return m, tea.Quit
				}
				m.refresh()
				return m, nil
			case "esc":
				m.leaveCommandMode()
				return m, nil
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if msg.String() == ":" {
			m.commandMode = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) leaveCommandMode() {
	m.commandMode = false
	m.input.Blur()
	m.input.SetValue("")
}

// refresh re-renders the current content into the viewport
func (m *pagerModel) refresh() {
	width := m.viewport.Width - 2
	out, err := render.Terminal(m.s.content, m.s.theme, width)
	if err != nil {
		out = m.s.content
	}
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

func (m pagerModel) View() string {
	theme := styles.ThemeByName(m.s.theme)

	var tabs []string
	for _, name := range m.s.buffers.List() {
		style := theme.TabInactive
		if name == m.s.buffers.Current() {
			style = theme.TabActive
		}
		tabs = append(tabs, style.Render(name+".md"))
	}
	header := theme.Title.Render(m.title) + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	mode := theme.ModeNormal.Render("NORMAL")
	if m.commandMode {
		mode = theme.ModeCommand.Render("COMMAND")
	}
	percent := "TOP"
	if p := m.viewport.ScrollPercent(); p > 0 {
		percent = fmt.Sprintf("%d%%", int(p*100))
	}
	status := mode + theme.StatusBar.Render(" "+m.s.label+" ") + theme.Dim.Render(" "+percent)

	bottom := theme.Help.Render("j/k scroll • : command • :help • ctrl+c quit")
	if m.commandMode {
		bottom = m.input.View()
	} else if m.s.alert != "" {
		bottom = theme.Warning.Render(m.s.alert)
	}

	return strings.Join([]string{header, m.viewport.View(), status, bottom}, "\n")
}
