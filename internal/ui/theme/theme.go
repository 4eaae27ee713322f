package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette names.
const (
	DefaultName = "default"
	BarbieName  = "barbie"
)

// Palette is one named color scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Highlight color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

var palettes = map[string]Palette{
	// Kid-friendly, bright but not garish
	DefaultName: {
		Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
		Highlight: lipgloss.Color("#FACC15"), // Arcade Yellow
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
		BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
		Border:    lipgloss.Color("#334155"), // Slate
	},
	BarbieName: {
		Primary:   lipgloss.Color("#EC4899"), // Hot Pink
		Secondary: lipgloss.Color("#F9A8D4"), // Blush
		Accent:    lipgloss.Color("#A855F7"), // Lilac
		Highlight: lipgloss.Color("#FDE68A"), // Sparkle
		Success:   lipgloss.Color("#34D399"), // Mint
		Error:     lipgloss.Color("#FB7185"), // Coral
		Text:      lipgloss.Color("#FFF1F2"), // Petal
		TextDim:   lipgloss.Color("#F0ABFC"), // Orchid
		BgDark:    lipgloss.Color("#3B0764"), // Plum
		BgCard:    lipgloss.Color("#581C87"), // Grape
		Border:    lipgloss.Color("#9D174D"), // Berry
	},
}

// Color palette, swapped by Use.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Highlight color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

var current string

func init() {
	Use(DefaultName)
}

// Names returns the known palette names.
func Names() []string {
	return []string{DefaultName, BarbieName}
}

// Current returns the active palette name.
func Current() string {
	return current
}

// Use switches the active palette. Unknown names keep the current one.
func Use(name string) bool {
	p, ok := palettes[name]
	if !ok {
		return false
	}
	current = name
	apply(p)
	return true
}

func apply(p Palette) {
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Highlight = p.Highlight
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.BgDark
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
