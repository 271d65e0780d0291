package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgerrors "github.com/shaderforge/shadegraph/pkg/errors"
	"github.com/shaderforge/shadegraph/pkg/graph"
	"github.com/shaderforge/shadegraph/pkg/store"
)

// storeCommand creates the graph store management command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the named graph store",
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeLoadCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save a graph document under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			if err := pkgerrors.ValidateGraphName(name); err != nil {
				return err
			}

			g, err := graph.ReadGraphFile(path)
			if err != nil {
				return err
			}

			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Save(cmd.Context(), name, g); err != nil {
				return fmt.Errorf("save %s: %w", name, err)
			}
			printSuccess("saved %q", name)
			printStats(g.NodeCount(), g.ConnectionCount())
			return nil
		},
	}
}

// storeLoadCommand creates the "store load" subcommand.
func (c *CLI) storeLoadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a named graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := s.Load(cmd.Context(), name)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no graph named %q", name)
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}

			if output == "" {
				return graph.WriteGraph(g, os.Stdout)
			}
			if err := graph.WriteGraphFile(g, output); err != nil {
				return err
			}
			printSuccess("loaded %q", name)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	return cmd
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graph names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list graphs: %w", err)
			}
			if len(names) == 0 {
				printInfo("store is empty")
				return nil
			}
			for _, name := range names {
				fmt.Println(StyleValue.Render(name))
			}
			printDetail("%d graph(s)", len(names))
			return nil
		},
	}
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a named graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			s, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.Delete(cmd.Context(), name)
			if errors.Is(err, store.ErrNotFound) {
				printWarning("no graph named %q", name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("delete %s: %w", name, err)
			}
			printSuccess("deleted %q", name)
			return nil
		},
	}
}
