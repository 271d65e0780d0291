package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaderforge/shadegraph/pkg/graph"
)

// validateCommand creates the graph validation command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a graph document for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(path string) error {
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return err
	}

	issues := g.Validate()
	if len(issues) == 0 {
		printSuccess("%s is well-formed", path)
		printStats(g.NodeCount(), g.ConnectionCount())
		return nil
	}

	printError("%s has %d finding(s)", path, len(issues))
	for _, issue := range issues {
		printDetail("%s", issue)
	}
	return fmt.Errorf("validation failed with %d finding(s)", len(issues))
}
