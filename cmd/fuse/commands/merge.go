package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fuse/internal/app"
	"go.trai.ch/fuse/internal/ui/diff"
	"go.trai.ch/fuse/internal/ui/output"
	"go.trai.ch/fuse/internal/ui/style"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Merge mutation documents into one",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			schema, _ := cmd.Flags().GetString("schema")
			showDiff, _ := cmd.Flags().GetBool("diff")

			res, err := c.app.Merge(cmd.Context(), app.MergeOptions{
				ConfigPath: c.configPath,
				SchemaPath: schema,
				Files:      args,
			})
			if err != nil {
				return err
			}

			if showDiff {
				writeDiffs(cmd.OutOrStdout(), res.Diffs)
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), res.Mutation)
			return nil
		},
	}
	cmd.Flags().StringP("schema", "s", "", "Schema file (SDL or introspection JSON), overrides the configured schema")
	cmd.Flags().BoolP("diff", "d", false, "Show how each input document differs from the merged mutation")
	return cmd
}

func writeDiffs(w io.Writer, diffs []app.FileDiff) {
	out := output.New(w)
	for _, d := range diffs {
		header := style.Arrow + " " + d.Path
		if !diff.Changed(d.Lines) {
			_, _ = fmt.Fprintln(w, output.Paint(out, header+" (unchanged)", style.Slate))
			continue
		}
		_, _ = fmt.Fprintln(w, output.Paint(out, header, style.Iris))
		_, _ = fmt.Fprint(w, diff.Render(out, d.Lines))
	}
}
