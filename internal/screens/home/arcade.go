package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/ui/components"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

const arcadeTitleFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗████████╗██╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║╚══██╔══╝██║██║ ██╔╝
 ██╔████╔██║███████║   ██║   ███████║   ██║   ██║█████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║   ██║   ██║██╔═██╗
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║   ██║   ██║██║  ██╗
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚═╝╚═╝  ╚═╝`

const arcadeTitleCompact = "M · A · T · H · T · I · K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(level, points, due, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	reviewStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", level)),
			pointStyle.Render(fmt.Sprintf("★%d", points)),
			reviewText(due, true, reviewStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", level)),
			pointStyle.Render(fmt.Sprintf("★ %d POINTS", points)),
			reviewText(due, false, reviewStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func reviewText(due int, compact bool, active, dim lipgloss.Style) string {
	if due == 0 {
		if compact {
			return dim.Render("↺0")
		}
		return dim.Render("↺ NONE DUE")
	}
	if compact {
		return active.Render(fmt.Sprintf("↺%d", due))
	}
	return active.Render(fmt.Sprintf("↺ %d DUE", due))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
			continue
		}
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderLastSession renders a dim one-line recap of the previous session.
func renderLastSession(attempts, correct int, d time.Duration, cw int) string {
	text := fmt.Sprintf("Last time: %d/%d correct in %s", correct, attempts, d)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
