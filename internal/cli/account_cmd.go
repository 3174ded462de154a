package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage balance accounts",
	}

	cmd.AddCommand(
		newAccountAddCmd(app),
		newAccountListCmd(app),
		newAccountSetCmd(app),
		newAccountRemoveCmd(app),
	)

	return cmd
}

func newAccountAddCmd(app *App) *cobra.Command {
	var name, class string
	var balance float64
	var liquid bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a balance account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Account{
				Name:    name,
				Class:   domain.AccountClass(class),
				Balance: balance,
				Liquid:  liquid,
			}
			if err := app.Ledger.CreateAccount(context.Background(), a); err != nil {
				return err
			}
			fmt.Printf("Added account %s (%s)\n", a.Name, formatter.Money(a.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&class, "class", "asset", "Account class (asset|liability)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Current balance")
	cmd.Flags().BoolVar(&liquid, "liquid", false, "Counts toward the runway pool")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List balance accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := app.Ledger.ListAccounts(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatAccounts(accounts))
			return nil
		},
	}
}

func newAccountSetCmd(app *App) *cobra.Command {
	var balance float64

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Update an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, a, err := resolveAccount(ctx, app, args[0])
			if err != nil {
				return err
			}
			a.Balance = balance
			if err := app.Ledger.UpdateAccount(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Updated account %s to %s\n", id, formatter.Money(balance))
			return nil
		},
	}

	cmd.Flags().Float64Var(&balance, "balance", 0, "New balance")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func newAccountRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, _, err := resolveAccount(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Ledger.DeleteAccount(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed account %s\n", id)
			return nil
		},
	}
}

func resolveAccount(ctx context.Context, app *App, input string) (string, *domain.Account, error) {
	accounts, err := app.Ledger.ListAccounts(ctx)
	if err != nil {
		return "", nil, err
	}
	refs := make([]ref, 0, len(accounts))
	for _, a := range accounts {
		refs = append(refs, ref{ID: a.ID, Name: a.Name})
	}
	id, err := resolveRef("account", input, refs)
	if err != nil {
		return "", nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return id, a, nil
		}
	}
	return "", nil, fmt.Errorf("account not found: %q", input)
}
