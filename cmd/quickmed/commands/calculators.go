package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// calculators [query]: list calculators whose name contains query.
func (c *cli) calculatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "calculators [query]",
		Aliases: []string{"list"},
		Short:   "List calculators, optionally filtered by name",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			infos := c.svc.Calculators(query)
			if len(infos) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no calculators match %q\n", query)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tINPUTS")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Key, info.Name, strings.Join(info.Fields, ", "))
			}
			return tw.Flush()
		},
	}
}
