package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newPurchaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Manage one-off purchases",
	}

	cmd.AddCommand(
		newPurchaseAddCmd(app),
		newPurchaseListCmd(app),
		newPurchaseReconcileCmd(app),
		newPurchaseArchiveCmd(app),
	)

	return cmd
}

func newPurchaseAddCmd(app *App) *cobra.Command {
	var item, category, date, ownership, notes string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Purchase{
				Item:      item,
				Amount:    amount,
				Category:  category,
				Ownership: ownership,
				Notes:     notes,
			}
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid purchase date %q: %w", date, err)
				}
				p.PurchaseDate = parsed
			}
			if err := app.Ledger.CreatePurchase(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Recorded purchase %s (%s)\n", p.Item, formatter.Money(p.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "Purchased item")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Purchase amount")
	cmd.Flags().StringVar(&category, "category", "", "Budget category")
	cmd.Flags().StringVar(&date, "date", "", "Purchase date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&ownership, "ownership", "", "Who the purchase belongs to")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPurchaseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			purchases, err := app.Ledger.ListPurchases(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPurchases(purchases))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived purchases")

	return cmd
}

func newPurchaseReconcileCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "reconcile ID",
		Short: "Update a purchase's reconciliation status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := domain.ReconciliationStatus(status)
			switch s {
			case domain.ReconPending, domain.ReconPosted, domain.ReconReconciled:
			default:
				return fmt.Errorf("unknown reconciliation status %q", status)
			}

			id, p, err := resolvePurchase(ctx, app, args[0])
			if err != nil {
				return err
			}
			p.ReconciliationStatus = s
			p.UpdatedAt = time.Now().UTC()
			if err := app.Ledger.UpdatePurchase(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Marked purchase %s as %s\n", id, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (pending|posted|reconciled)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newPurchaseArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, _, err := resolvePurchase(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Ledger.ArchivePurchase(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Archived purchase %s\n", id)
			return nil
		},
	}
}

func resolvePurchase(ctx context.Context, app *App, input string) (string, *domain.Purchase, error) {
	purchases, err := app.Ledger.ListPurchases(ctx, true)
	if err != nil {
		return "", nil, err
	}
	refs := make([]ref, 0, len(purchases))
	for _, p := range purchases {
		refs = append(refs, ref{ID: p.ID, Name: p.Item})
	}
	id, err := resolveRef("purchase", input, refs)
	if err != nil {
		return "", nil, err
	}
	for _, p := range purchases {
		if p.ID == id {
			return id, p, nil
		}
	}
	return "", nil, fmt.Errorf("purchase not found: %q", input)
}
