package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the financial summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := app.Summaries.Compute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSummary(summary))

			if verify {
				report, err := app.Summaries.Verify(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatIntegrity(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Recompute every aggregate and report deltas")

	return cmd
}
