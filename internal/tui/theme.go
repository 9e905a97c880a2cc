package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles for every UI element. Themes are selected by name
// from the config file.
type Theme struct {
	Name string

	Border       lipgloss.Style
	ActiveBorder lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	Focused      lipgloss.Style
	Completed    lipgloss.Style
	Working      lipgloss.Style
	Dim          lipgloss.Style
	InputTitle   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "default",
		Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		ActiveBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		Item:         lipgloss.NewStyle(),
		Focused:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		Completed:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Working:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		InputTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	},
	"dracula": {
		Name:         "dracula",
		Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6272a4")),
		ActiveBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#bd93f9")),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9")),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("#f8f8f2")),
		Focused:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff79c6")),
		Completed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")).Strikethrough(true),
		Working:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")),
		InputTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50fa7b")),
	},
}

// CurrentTheme is the active theme. Set once at startup via SetTheme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme by name. Unknown names are ignored.
func SetTheme(name string) {
	if theme, ok := Themes[name]; ok {
		CurrentTheme = theme
	}
}
