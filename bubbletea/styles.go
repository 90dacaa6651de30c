package bubbletea

import "github.com/charmbracelet/lipgloss"

// Theme selects the color palette of the browser.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	text    lipgloss.Color
	surface lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark: {
		primary: lipgloss.Color("#A78BFA"),
		accent:  lipgloss.Color("#10B981"),
		muted:   lipgloss.Color("#9CA3AF"),
		text:    lipgloss.Color("#F9FAFB"),
		surface: lipgloss.Color("#1F2937"),
	},
	ThemeLight: {
		primary: lipgloss.Color("#6D28D9"),
		accent:  lipgloss.Color("#047857"),
		muted:   lipgloss.Color("#4B5563"),
		text:    lipgloss.Color("#111827"),
		surface: lipgloss.Color("#E5E7EB"),
	},
}

type styles struct {
	title         lipgloss.Style
	search        lipgloss.Style
	keyword       lipgloss.Style
	keywordCursor lipgloss.Style
	keywordActive lipgloss.Style
	postTitle     lipgloss.Style
	postMeta      lipgloss.Style
	postDesc      lipgloss.Style
	empty         lipgloss.Style
	help          lipgloss.Style
}

func newStyles(t Theme) styles {
	p := palettes[t]
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		keyword: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		keywordCursor: lipgloss.NewStyle().
			Foreground(p.text).
			Underline(true).
			Padding(0, 1),
		keywordActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			Background(p.primary).
			Padding(0, 1),
		postTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		postMeta: lipgloss.NewStyle().
			Foreground(p.accent),
		postDesc: lipgloss.NewStyle().
			Foreground(p.text),
		empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.muted).
			Background(p.surface).
			Padding(0, 1),
		help: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),
	}
}
