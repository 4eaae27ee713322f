package play

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/minigame"
	"github.com/abhisek/mathtik/internal/problemgen"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

const (
	fruitIcon  = "●"
	coinIcon   = "◉"
	friendIcon = "☺"
)

func (s *PlayScreen) View(width, height int) string {
	if s.board == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Getting ready...")
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	q := s.current.Question() + " = ?"
	if s.current.Review {
		q = "↺ " + q
	}
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(q))
	b.WriteString("\n\n")

	b.WriteString(center.Render(renderBoard(s.board, s.guided())))
	b.WriteString("\n\n")

	if s.current.Input == problemgen.InputMultipleChoice {
		b.WriteString(center.Render(s.choices.View()))
	} else {
		b.WriteString(center.Render(s.picker.View()))
	}
	b.WriteString("\n\n")

	if fb := s.renderFeedback(); fb != "" {
		b.WriteString(center.Render(fb))
		b.WriteString("\n")
	}
	for _, line := range s.banners {
		b.WriteString(center.Foreground(theme.Highlight).Bold(true).Render("★ " + line + " ★"))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *PlayScreen) renderInfoLine(width int) string {
	p := s.game.Profile()
	sess := s.game.Session()

	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d  %d/10", p.Level, p.LevelProgress))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  %s %d  %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			sess.Correct, sess.Attempts,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("🔥"),
			p.Streak,
			mins, secs,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *PlayScreen) renderFeedback() string {
	if s.last == nil {
		return ""
	}
	if s.last.Correct {
		msg := fmt.Sprintf("Great job! +%d points", s.last.PointsAwarded)
		if s.last.StreakBonus > 0 {
			msg += fmt.Sprintf(" (streak bonus +%d)", s.last.StreakBonus)
		}
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(msg)
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render(fmt.Sprintf("%d is not quite it. Try again!", s.last.Submitted))
}

// renderBoard draws the mini-game for the challenge variant. Guided boards
// add running counts.
func renderBoard(bd *minigame.Board, guided bool) string {
	icon := fruitIcon
	color := theme.Success
	if bd.Variant.IsCoin() {
		icon = coinIcon
		color = theme.Highlight
	}
	items := lipgloss.NewStyle().Foreground(color)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	pile := func(n int) string {
		if n == 0 {
			return dim.Render("·")
		}
		if bd.Variant.IsCoin() {
			stacks := minigame.Stacks(n)
			parts := make([]string, len(stacks))
			for i, k := range stacks {
				parts[i] = strings.Repeat(icon, k)
			}
			return items.Render(strings.Join(parts, " "))
		}
		return items.Render(strings.Repeat(icon, n))
	}

	var rows []string
	if bd.Variant.IsDivide() {
		rows = append(rows, dim.Render("Share: ")+pile(bd.Pool))
		for i, n := range bd.Groups {
			rows = append(rows, fmt.Sprintf("%s %-2d %s", friendIcon, i+1, pile(n)))
		}
	} else {
		for i, n := range bd.Groups {
			rows = append(rows, fmt.Sprintf("%s %s", dim.Render(fmt.Sprintf("%2d", i+1)), pile(n)))
		}
		rows = append(rows, dim.Render("Total: ")+pile(bd.Pool))
	}

	if guided && !bd.Variant.IsDivide() {
		hints := bd.CountingHints()
		parts := make([]string, len(hints))
		for i, h := range hints {
			parts[i] = strconv.Itoa(h)
		}
		rows = append(rows, dim.Render("Count: "+strings.Join(parts, ", ")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Align(lipgloss.Left).
		Render(strings.Join(rows, "\n"))
}
