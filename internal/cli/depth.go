package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/riffle/internal/msort"
)

// NewDepthCommand creates the depth command, which reports the
// recommended parallel depth budget for this machine.
func NewDepthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "depth",
		Short: "Print the recommended parallel depth for this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := msort.RecommendedDepth()
			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(map[string]int{"recommended_depth": d})
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
