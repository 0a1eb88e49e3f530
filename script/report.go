package script

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorDim   = lipgloss.Color("240")
	colorGray  = lipgloss.Color("245")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("160")

	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// Report renders the recorded steps as a table of slot occupancy.
func Report(steps []Step) string {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		dragging := s.Dragging
		if dragging == "" {
			dragging = "-"
		}
		status := "ok"
		if s.Err != nil {
			status = "FAIL"
		}
		rows = append(rows, []string{
			fmt.Sprint(s.Line),
			s.Command,
			strings.Join(s.Order, " "),
			fmt.Sprintf("%d/%d", s.Selected, s.Total),
			dragging,
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Line", "Command", "Slots", "Selected", "Dragging", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col != 5 || row >= len(steps) {
				return base
			}
			if steps[row].Err != nil {
				return base.Inherit(failStyle)
			}
			return base.Inherit(okStyle)
		})

	var b strings.Builder
	b.WriteString(t.Render())
	for _, s := range steps {
		if s.Err != nil {
			b.WriteString("\n")
			b.WriteString(failStyle.Render(fmt.Sprintf("line %d: %v", s.Line, s.Err)))
		}
	}
	return b.String()
}
