package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DRILLBUR palette, matching the generated icon.
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#b8948a"))

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#b8948a")).
			Padding(0, 2)
)

// Summary renders the consolidated end-of-run report as a bordered box.
func Summary(title string, lines []string) string {
	body := summaryTitleStyle.Render(title)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return summaryBoxStyle.Render(body)
}
