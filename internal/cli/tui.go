package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/search"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ColorPickerModel - Interactive recolor with live previews
// =============================================================================

// ColorPickerModel is the bubbletea model for picking a vertex color. Each row
// shows one palette color with its recolor preview.
type ColorPickerModel struct {
	Vertex   graph.ID
	Previews []*search.PreviewResult
	Cursor   int
	Selected *search.PreviewResult
}

// newColorPickerModel creates a picker positioned on the most promising color.
func newColorPickerModel(id graph.ID, previews []*search.PreviewResult) ColorPickerModel {
	m := ColorPickerModel{Vertex: id, Previews: previews}
	for i, pr := range previews {
		if pr.SuccessProbabilityPercent > previews[m.Cursor].SuccessProbabilityPercent {
			m.Cursor = i
		}
	}
	return m
}

func (m ColorPickerModel) Init() tea.Cmd {
	return nil
}

func (m ColorPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Previews)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Previews) == 0 {
				return m, tea.Quit
			}
			m.Selected = m.Previews[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ColorPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Recolor vertex %s", m.Vertex)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Previews))
	for i, pr := range m.Previews {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		clashes := "—"
		if pr.AffectedNeighborCount > 0 {
			ids := make([]string, len(pr.Affected))
			for j, id := range pr.Affected {
				ids[j] = string(id)
			}
			clashes = strings.Join(ids, ", ")
		}
		rows[i] = []string{
			cursor,
			swatch(pr.Color) + " " + string(pr.Color),
			fmt.Sprintf("%d%%", pr.SuccessProbabilityPercent),
			fmt.Sprintf("%d/%d", pr.AffectedNeighborCount, pr.Neighbors),
			clashes,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Color", "Success", "Clashing", "Neighbors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(m.Previews) {
				return lipgloss.NewStyle()
			}
			pr := m.Previews[row]
			base := lipgloss.NewStyle()
			if col == 2 {
				switch {
				case pr.SuccessProbabilityPercent == 100:
					base = base.Foreground(colorGreen)
				case pr.SuccessProbabilityPercent >= 50:
					base = base.Foreground(colorYellow)
				default:
					base = base.Foreground(colorRed)
				}
			} else if col > 2 {
				base = base.Foreground(colorDim)
			}
			if row == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Previews))))

	return b.String()
}
