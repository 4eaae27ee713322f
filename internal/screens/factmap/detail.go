package factmap

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/screen"
	"github.com/abhisek/mathtik/internal/ui/layout"
	"github.com/abhisek/mathtik/internal/ui/theme"
)

// LevelDetailScreen lists the mastery record of every fact in one level.
type LevelDetailScreen struct {
	level int
	facts []facts.Fact
	table *mastery.Table
	now   time.Time
}

var _ screen.Screen = (*LevelDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LevelDetailScreen)(nil)

func newLevelDetail(level int, list []facts.Fact, table *mastery.Table, now time.Time) *LevelDetailScreen {
	return &LevelDetailScreen{level: level, facts: list, table: table, now: now}
}

func (d *LevelDetailScreen) Init() tea.Cmd { return nil }
func (d *LevelDetailScreen) Title() string { return fmt.Sprintf("Level %d", d.level) }

func (d *LevelDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *LevelDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LevelDetailScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %-10s %-9s %5s %5s %8s %6s", "Fact", "Strength", "Score", "Ease", "Interval", "Due")))
	b.WriteString("\n")

	for i, f := range d.facts {
		if i >= height-1 {
			break
		}
		rec, ok := d.table.Get(f.Signature())
		if !ok {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %-10s %-9s", f.Question(), "new")))
			b.WriteString("\n")
			continue
		}
		line := fmt.Sprintf("  %-10s %-9s %5d %5.2f %8s %6s",
			f.Question(),
			rec.Strength(),
			rec.Score,
			rec.Ease,
			rec.Interval(),
			rec.DueIn(d.now),
		)
		b.WriteString(cellStyle(rec.Strength()).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
