package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/planning"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and simulate monthly plans",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanSetCmd(app),
		newPlanSelectCmd(app),
		newPlanSimulateCmd(app),
	)

	return cmd
}

func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

func newPlanShowCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the month's plan versions against the baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Plans.Workspace(context.Background(), month)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWorkspace(w))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "Plan month (YYYY-MM)")

	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	var month, name string
	var income, fixed, variable float64
	var selected bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a plan version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := &domain.PlanVersion{
				Month:               month,
				Name:                domain.PlanVersionName(name),
				ExpectedIncome:      income,
				FixedCommitments:    fixed,
				VariableSpendingCap: variable,
				Selected:            selected,
			}
			if err := app.Plans.SaveVersion(context.Background(), v); err != nil {
				return err
			}
			fmt.Printf("Saved plan %s/%s\n", v.Month, v.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "Plan month (YYYY-MM)")
	cmd.Flags().StringVar(&name, "version", "base", "Version name (base|conservative|aggressive)")
	cmd.Flags().Float64Var(&income, "income", 0, "Expected monthly income")
	cmd.Flags().Float64Var(&fixed, "fixed", 0, "Fixed monthly commitments")
	cmd.Flags().Float64Var(&variable, "variable", 0, "Variable spending cap")
	cmd.Flags().BoolVar(&selected, "select", false, "Select this version for the month")
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("fixed")
	_ = cmd.MarkFlagRequired("variable")

	return cmd
}

func newPlanSelectCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "select VERSION",
		Short: "Select the month's active plan version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.PlanVersionName(args[0])
			if err := app.Plans.SelectVersion(context.Background(), month, name); err != nil {
				return err
			}
			fmt.Printf("Selected plan %s/%s\n", month, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "Plan month (YYYY-MM)")

	return cmd
}

func newPlanSimulateCmd(app *App) *cobra.Command {
	var month string
	var incomeDrop, billIncrease, extraDebt, oneOff float64
	var smooth bool
	var lookback int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a what-if scenario against the selected version",
		RunE: func(cmd *cobra.Command, args []string) error {
			shock := planning.Shock{
				IncomeDropPercent:   incomeDrop,
				BillIncreasePercent: billIncrease,
				ExtraDebtPayment:    extraDebt,
				OneOffExpense:       oneOff,
				SmoothingEnabled:    smooth,
				LookbackMonths:      lookback,
			}
			result, err := app.Plans.Simulate(context.Background(), month, shock)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSimulation(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", currentMonth(), "Plan month (YYYY-MM)")
	cmd.Flags().Float64Var(&incomeDrop, "income-drop", 0, "Income drop percent [0,100]")
	cmd.Flags().Float64Var(&billIncrease, "bill-increase", 0, "Bill increase percent [0,500]")
	cmd.Flags().Float64Var(&extraDebt, "extra-debt", 0, "Extra monthly debt payment")
	cmd.Flags().Float64Var(&oneOff, "one-off", 0, "One-off expense")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "Enable seasonal smoothing")
	cmd.Flags().IntVar(&lookback, "lookback", 12, "Smoothing lookback months")

	return cmd
}
