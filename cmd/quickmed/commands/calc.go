package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/okian/quickmed/internal/app"
	"github.com/okian/quickmed/internal/domain/calculator"
	"github.com/okian/quickmed/internal/domain/types"
)

// calc <calculator> --input field=value ...: run a calculator and record it.
func (c *cli) calcCmd() *cobra.Command {
	var (
		inputs map[string]string
		note   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "calc <calculator>",
		Short: "Run a calculator and record the result",
		Example: `  quickmed calc bmi -i weight_kg=70 -i height_cm=170
  quickmed calc creatinine -i age=50,weight_kg=70,serum_creatinine_mg_dl=1.0,sex=female
  quickmed calc chads2 -i hypertension=yes -i diabetes=yes --note "follow up"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.started(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Calculate(cmd.Context(), app.Request{
				Calculator: args[0],
				Inputs:     calculator.Values(inputs),
				Note:       note,
			})
			if err != nil {
				return err
			}

			if out.Warning != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: result not saved: %v\n", out.Warning)
			}

			if asJSON {
				resp := types.NewCalculationResponse(out.Result)
				resp.RecordID = int64(out.RecordID)
				resp.Persisted = out.Persisted
				if out.Warning != nil {
					resp.Warning = out.Warning.Error()
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			for _, line := range out.Result.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if out.Persisted {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved as record #%d\n", out.RecordID)
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVarP(&inputs, "input", "i", nil, "input field=value, repeatable")
	cmd.Flags().StringVarP(&note, "note", "n", "", "note stored with the record")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
