package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command, an interactive browser over the
// partitions of n and their characters.
func (c *CLI) exploreCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "explore <n>",
		Short: "Browse the partitions of n and their characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDegree(args[0])
			if err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), n, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runExplore loads the character table of S_n and starts the browser.
func (c *CLI) runExplore(ctx context.Context, n int, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Computing character table of S_%d...", n))
	spinner.Start()
	res, err := runner.Table(ctx, n, false)
	if err != nil {
		spinner.StopWithError("Table failed")
		return err
	}
	spinner.Stop()

	p := tea.NewProgram(NewExploreModel(res.Table), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}
