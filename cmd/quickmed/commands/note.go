package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// note <text...>: record a manual note.
func (c *cli) noteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <text>",
		Short: "Record a free-text note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.started(cmd.Context())
			if err != nil {
				return err
			}
			id, err := svc.SaveNote(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note saved as record #%d\n", id)
			return nil
		},
	}
}
