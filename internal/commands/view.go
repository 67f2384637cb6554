package commands

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/termfolio/internal/palette"
	"github.com/gerunddev/termfolio/internal/tui"
)

// View opens the content pager at the configured start page
func View() {
	cfg := mustLoadConfig()

	log, cleanup := openLogger(cfg)
	defer cleanup()

	m := tui.InitPagerModel(tui.PagerOptions{
		Title:     cfg.Title,
		StartPage: cfg.StartPage,
		Theme:     cfg.Theme,
		Registry:  palette.NewRegistry(cfg.Files, cfg.Links),
		Load: func(name string) (string, error) {
			content, err := os.ReadFile(cfg.ContentPath(name))
			if err != nil {
				log.FileError(cfg.ContentPath(name), err)
				return "", err
			}
			return string(content), nil
		},
		OnTheme: func(name string) {
			cfg.Theme = name
			if err := cfg.Save(); err != nil {
				log.Error("failed to save theme", "theme", name, "error", err)
			}
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(os.Stdin))
	if _, err := p.Run(); err != nil {
		fail("Error: " + err.Error())
	}
}
