package statistics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStyles contains styling for the summary table
type renderStyles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Winner lipgloss.Style
}

func newRenderStyles() renderStyles {
	return renderStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// Render formats the summary as a fixed-width table, one row per strategy
// label, with the best win rate highlighted.
func (s *Summary) Render() string {
	styles := newRenderStyles()

	var best string
	bestRate := -1.0
	for _, label := range s.Labels {
		if rate := s.ByStrategy[label].WinRate(); rate > bestRate {
			bestRate = rate
			best = label
		}
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("Simulation Summary (%d games)", s.Games)))
	b.WriteString("\n")

	for _, label := range s.Labels {
		st := s.ByStrategy[label]
		labelStyle := styles.Label
		if label == best {
			labelStyle = styles.Winner
		}
		row := fmt.Sprintf("%s | %s\n",
			labelStyle.Render(fmt.Sprintf("%-30s", label)),
			styles.Value.Render(fmt.Sprintf("Win Rate: %6.2f%% | Avg Score: %6.1f | Avg Rounds: %5.2f",
				st.WinRate()*100, st.AvgScore(), st.AvgRounds())),
		)
		b.WriteString(row)
	}
	return b.String()
}
