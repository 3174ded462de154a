package cli

import (
	"context"
	"fmt"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newDebtCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Manage and project debt accounts",
	}

	cmd.AddCommand(
		newDebtAddCmd(app),
		newDebtListCmd(app),
		newDebtPayoffCmd(app),
		newDebtRemoveCmd(app),
	)

	return cmd
}

func newDebtAddCmd(app *App) *cobra.Command {
	var name, kind string
	var balance, limit, statement, apr, minimum, minimumPct, extra, plannedSpend float64
	var dueDay, statementDay int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a debt account",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.DebtAccount{
				Name:           name,
				Kind:           domain.DebtKind(kind),
				CurrentBalance: balance,
				APR:            apr,
				ExtraPayment:   extra,
				PlannedSpend:   plannedSpend,
				DueDay:         dueDay,
				StatementDay:   statementDay,
			}
			if cmd.Flags().Changed("limit") {
				d.CreditLimit = &limit
			}
			if cmd.Flags().Changed("statement") {
				d.StatementBalance = &statement
			}
			if cmd.Flags().Changed("minimum-percent") {
				d.MinimumPaymentMode = domain.MinimumPercentPlusInterest
				d.MinimumPercent = minimumPct
			} else {
				d.MinimumPaymentMode = domain.MinimumFixed
				d.FixedMinimum = minimum
			}

			if err := app.Debts.Create(context.Background(), d); err != nil {
				return err
			}
			fmt.Printf("Added %s %s (%s)\n", d.Kind, d.Name, formatter.Money(d.CurrentBalance))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&kind, "kind", "card", "Account kind (card|loan)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Current balance")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Credit limit (cards)")
	cmd.Flags().Float64Var(&statement, "statement", 0, "Last statement balance")
	cmd.Flags().Float64Var(&apr, "apr", 0, "Annual percentage rate")
	cmd.Flags().Float64Var(&minimum, "minimum", 25, "Fixed minimum payment")
	cmd.Flags().Float64Var(&minimumPct, "minimum-percent", 0, "Percent-of-balance minimum (switches mode)")
	cmd.Flags().Float64Var(&extra, "extra", 0, "Extra payment on top of the minimum")
	cmd.Flags().Float64Var(&plannedSpend, "planned-spend", 0, "Expected new spend per cycle")
	cmd.Flags().IntVar(&dueDay, "due-day", 21, "Payment due day of month")
	cmd.Flags().IntVar(&statementDay, "statement-day", 1, "Statement close day of month")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func newDebtListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show cycle projections and portfolio totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Debts.Overview(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDebtOverview(overview))
			return nil
		},
	}
}

func newDebtPayoffCmd(app *App) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Rank payoff targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := domain.PayoffStrategy(strategy)
			if s != domain.StrategyAvalanche && s != domain.StrategySnowball {
				return fmt.Errorf("unknown payoff strategy %q", strategy)
			}
			ranking, err := app.Debts.RankPayoff(context.Background(), s)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPayoffRanking(ranking))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "avalanche", "Payoff strategy (avalanche|snowball)")

	return cmd
}

func newDebtRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a debt account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			debts, err := app.Debts.List(ctx)
			if err != nil {
				return err
			}
			refs := make([]ref, 0, len(debts))
			for _, d := range debts {
				refs = append(refs, ref{ID: d.ID, Name: d.Name})
			}
			id, err := resolveRef("debt account", args[0], refs)
			if err != nil {
				return err
			}
			if err := app.Debts.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed debt account %s\n", id)
			return nil
		},
	}
}
