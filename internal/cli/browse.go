package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive archetype browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse node archetypes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewCatalogModel()
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// =============================================================================
// CatalogModel - Interactive archetype browsing
// =============================================================================

// CatalogModel is the bubbletea model for browsing the archetype catalog.
// The left pane lists archetypes; the right pane shows the slot layout of
// the archetype under the cursor.
type CatalogModel struct {
	Types  []shader.NodeType
	Cursor int
	Height int
	Offset int
}

// NewCatalogModel creates a catalog browser over all archetypes.
func NewCatalogModel() CatalogModel {
	return CatalogModel{
		Types:  shader.CatalogTypes(),
		Height: 20,
	}
}

func (m CatalogModel) Init() tea.Cmd {
	return nil
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Types)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Node Archetypes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Types) {
		end = len(m.Types)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		t := m.Types[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + string(t)))
		} else {
			list.WriteString(listNormalStyle.Render("  " + string(t)))
		}
		list.WriteString("\n")
	}

	detail := m.detailView()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(28).Render(list.String()),
		detail,
	))

	return b.String()
}

// detailView renders the slot layout of the archetype under the cursor.
func (m CatalogModel) detailView() string {
	if len(m.Types) == 0 {
		return ""
	}
	t := m.Types[m.Cursor]

	rows := [][]string{}
	for i, s := range shader.CatalogSlots(t) {
		value := ""
		if s.HasValue() {
			value = fmtSlotValue(s.Value)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(s.Direction),
			s.Name,
			string(s.Type),
			value,
		})
	}

	return fmt.Sprint(slotTable([]string{"#", "Dir", "Name", "Type", "Default"}, rows))
}
