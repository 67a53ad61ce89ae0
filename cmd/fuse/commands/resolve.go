package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fuse/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <mutation> <component-ids...>",
		Short: "Print the merged mutation for the listed components",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			showMetrics, _ := cmd.Flags().GetBool("metrics")

			mutation, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath:   c.configPath,
				Mutation:     args[0],
				ComponentIDs: args[1:],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), mutation)

			if showMetrics {
				return c.app.WriteMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	cmd.Flags().Bool("metrics", false, "Write dispatcher metrics to stderr after resolving")
	return cmd
}
