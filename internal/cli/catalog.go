package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/errors"
)

// catalogCommand creates the catalog inspection command.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List node archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList()
		},
	}

	cmd.AddCommand(c.catalogShowCommand())
	return cmd
}

// catalogShowCommand creates the "catalog show" subcommand.
func (c *CLI) catalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <archetype>",
		Short: "Show the slot layout of an archetype",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogShow(args[0])
		},
	}
}

func runCatalogList() error {
	fmt.Println(StyleTitle.Render("Node Archetypes"))

	rows := [][]string{}
	for _, t := range shader.CatalogTypes() {
		slots := shader.CatalogSlots(t)
		params := 0
		for _, s := range slots {
			if s.HasValue() {
				params++
			}
		}
		rows = append(rows, []string{
			string(t),
			strconv.Itoa(len(slots)),
			strconv.Itoa(params),
		})
	}

	fmt.Println(slotTable([]string{"Archetype", "Slots", "Params"}, rows))
	printDetail("%d archetypes", len(rows))
	return nil
}

func runCatalogShow(name string) error {
	if err := errors.ValidateArchetype(name); err != nil {
		return err
	}

	t := shader.NodeType(name)
	fmt.Println(StyleTitle.Render(string(t)))

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
			s.Key,
			string(s.Type),
			value,
		})
	}

	fmt.Println(slotTable([]string{"#", "Dir", "Name", "Key", "Type", "Default"}, rows))
	printKeyValue("slots", strconv.Itoa(len(rows)))
	return nil
}

// slotTable renders a bordered table in the shared palette.
func slotTable(headers []string, rows [][]string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// =============================================================================
// Value Formatting
// =============================================================================

// fmtSlotValue renders a slot value with its advisory range where one exists.
func fmtSlotValue(v shader.SlotValue) string {
	switch w := v.(type) {
	case shader.FloatValue:
		return fmt.Sprintf("%s [%s, %s]", fmtFloat(w.Value), fmtBound(w.Min), fmtBound(w.Max))
	case shader.BoolValue:
		return strconv.FormatBool(w.Value)
	case shader.ColorValue:
		return fmtTriple(w.Value)
	case shader.VectorValue:
		return fmt.Sprintf("%s [%s, %s]", fmtTriple(w.Value), fmtBound(w.Min.X), fmtBound(w.Max.X))
	case shader.EnumValue:
		return fmt.Sprintf("%s (%s)", w.Selected, w.Set.Name)
	case shader.RGBCurveValue:
		return fmt.Sprintf("curve, %d points", w.Curve.Size())
	case shader.VectorCurveValue:
		return fmt.Sprintf("curve, %d points, %s", w.Curve.Size(), fmtTriple(w.Value))
	default:
		return "?"
	}
}

func fmtTriple(v shader.Float3) string {
	return fmt.Sprintf("(%s, %s, %s)", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z))
}

func fmtFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 4, 32)
}

// fmtBound renders a range bound, collapsing the unbounded sentinels.
func fmtBound(f float32) string {
	switch {
	case f >= shader.Unbounded:
		return "inf"
	case f <= shader.NegUnbounded:
		return "-inf"
	default:
		return fmtFloat(f)
	}
}
