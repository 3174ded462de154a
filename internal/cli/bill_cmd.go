package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newBillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage recurring bills",
	}

	cmd.AddCommand(
		newBillAddCmd(app),
		newBillListCmd(app),
		newBillRemoveCmd(app),
	)

	return cmd
}

func newBillAddCmd(app *App) *cobra.Command {
	var name, category string
	var rec recurringFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Bill{
				Name:      name,
				Category:  category,
				Recurring: rec.toRecurring(),
			}
			if err := app.Ledger.CreateBill(context.Background(), b); err != nil {
				return err
			}
			fmt.Printf("Added bill %s (%s)\n", b.Name, formatter.CadenceLabel(b.Recurring))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bill name")
	cmd.Flags().StringVar(&category, "category", "", "Bill category")
	rec.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBillListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			bills, err := app.Ledger.ListBills(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBills(bills))
			return nil
		},
	}
}

func newBillRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bills, err := app.Ledger.ListBills(ctx)
			if err != nil {
				return err
			}
			refs := make([]ref, 0, len(bills))
			for _, b := range bills {
				refs = append(refs, ref{ID: b.ID, Name: b.Name})
			}
			id, err := resolveRef("bill", args[0], refs)
			if err != nil {
				return err
			}
			if err := app.Ledger.DeleteBill(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed bill %s\n", id)
			return nil
		},
	}
}
