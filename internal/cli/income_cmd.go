package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newIncomeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income sources",
	}

	cmd.AddCommand(
		newIncomeAddCmd(app),
		newIncomeListCmd(app),
		newIncomeRemoveCmd(app),
	)

	return cmd
}

func newIncomeAddCmd(app *App) *cobra.Command {
	var name string
	var rec recurringFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income source",
		RunE: func(cmd *cobra.Command, args []string) error {
			i := &domain.Income{
				Name:      name,
				Recurring: rec.toRecurring(),
			}
			if err := app.Ledger.CreateIncome(context.Background(), i); err != nil {
				return err
			}
			fmt.Printf("Added income %s (%s)\n", i.Name, formatter.CadenceLabel(i.Recurring))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Income source name")
	rec.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newIncomeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List income sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			incomes, err := app.Ledger.ListIncomes(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatIncomes(incomes))
			return nil
		},
	}
}

func newIncomeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an income source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			incomes, err := app.Ledger.ListIncomes(ctx)
			if err != nil {
				return err
			}
			refs := make([]ref, 0, len(incomes))
			for _, i := range incomes {
				refs = append(refs, ref{ID: i.ID, Name: i.Name})
			}
			id, err := resolveRef("income", args[0], refs)
			if err != nil {
				return err
			}
			if err := app.Ledger.DeleteIncome(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed income %s\n", id)
			return nil
		},
	}
}
