package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a site theme provides
type Palette struct {
	Background string
	Foreground string
	Red        string
	Orange     string
	Yellow     string
	Green      string
	Cyan       string
	Blue       string
	Purple     string
	Comment    string
	Border     string
}

// Tokyo Night palette
var Tokyo = Palette{
	Background: "#1A1B26",
	Foreground: "#C0CAF5",
	Red:        "#F7768E",
	Orange:     "#FF9E64",
	Yellow:     "#E0AF68",
	Green:      "#9ECE6A",
	Cyan:       "#7DCFFF",
	Blue:       "#7AA2F7",
	Purple:     "#BB9AF7",
	Comment:    "#565F89",
	Border:     "#3B4261",
}

// Gruvbox dark palette
var Gruvbox = Palette{
	Background: "#282828",
	Foreground: "#EBDBB2",
	Red:        "#FB4934",
	Orange:     "#FE8019",
	Yellow:     "#FABD2F",
	Green:      "#B8BB26",
	Cyan:       "#8EC07C",
	Blue:       "#83A598",
	Purple:     "#D3869B",
	Comment:    "#928374",
	Border:     "#504945",
}

// Theme holds the lipgloss styles derived from a palette
type Theme struct {
	Name    string
	Palette Palette

	Title     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Help      lipgloss.Style

	// Editor chrome
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	ModeNormal  lipgloss.Style
	ModeCommand lipgloss.Style
	StatusBar   lipgloss.Style
}

// NewTheme builds the styles for a named palette
func NewTheme(name string, p Palette) Theme {
	return Theme{
		Name:      name,
		Palette:   p,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Purple)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Green)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Red)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Orange)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Comment)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Yellow)).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Comment)),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)).
			Background(lipgloss.Color(p.Border)).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Comment)).
			Padding(0, 1),
		ModeNormal: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Blue)).
			Padding(0, 1),
		ModeCommand: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Yellow)).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)).
			Background(lipgloss.Color(p.Border)),
	}
}

// ThemeByName returns the theme for a config theme name, defaulting to tokyo
func ThemeByName(name string) Theme {
	if name == "gruvbox" {
		return NewTheme("gruvbox", Gruvbox)
	}
	return NewTheme("tokyo", Tokyo)
}

// Common styles for plain CLI output
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Tokyo.Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Tokyo.Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Tokyo.Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Tokyo.Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Tokyo.Purple))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Tokyo.Yellow)).Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Tokyo.Purple))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Tokyo.Border))
)
