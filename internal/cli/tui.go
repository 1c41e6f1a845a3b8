package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/snchar/pkg/character"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExploreModel - Interactive partition browser
// =============================================================================

// ExploreModel is the bubbletea model for browsing the partitions of n.
// The list shows each partition with its dimension; the panel below shows the
// character row of the selected partition.
type ExploreModel struct {
	Table  *character.Table
	Cursor int
	Height int
	Offset int
	Module bool // show χ_M instead of χ_S
}

// NewExploreModel creates a browser over a precomputed character table.
func NewExploreModel(t *character.Table) ExploreModel {
	return ExploreModel{
		Table:  t,
		Height: 12,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Table.Partitions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "m", "tab":
			m.Module = !m.Module
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Partitions of %d", m.Table.N)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  m toggle χ_M/χ_S  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Table.Partitions))
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-24s dim %d", cursor, m.Table.Partitions[i].String(), m.Table.Dimension(i))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.rowView())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Table.Partitions))))

	return b.String()
}

// rowView renders the selected partition's characters against every class.
func (m ExploreModel) rowView() string {
	values := m.Table.Irreducible[m.Cursor]
	name := "χ_S"
	if m.Module {
		values = m.Table.Module[m.Cursor]
		name = "χ_M"
	}

	rows := make([][]string, len(m.Table.Classes))
	for j, class := range m.Table.Classes {
		rows[j] = []string{class.Notation(), strconv.Itoa(class.ClassSize()), formatValue(values[j])}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("class", "size", name).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
