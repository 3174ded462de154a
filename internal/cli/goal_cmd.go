package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalInspectCmd(app),
		newGoalPauseCmd(app, true),
		newGoalPauseCmd(app, false),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var name, targetDate, funding string
	var target, current float64
	var rec recurringFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{
				Name:          name,
				TargetAmount:  target,
				CurrentAmount: current,
				Contribution:  rec.toRecurring(),
			}
			if targetDate != "" {
				parsed, err := time.Parse("2006-01-02", targetDate)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", targetDate, err)
				}
				g.TargetDate = &parsed
			}
			if funding != "" {
				g.FundingSources = strings.Split(funding, ",")
			}
			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}
			fmt.Printf("Added goal %s (target %s)\n", g.Name, formatter.Money(g.TargetAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().Float64Var(&target, "target", 0, "Target amount")
	cmd.Flags().Float64Var(&current, "current", 0, "Amount saved so far")
	cmd.Flags().StringVar(&targetDate, "by", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&funding, "funding", "", "Comma-separated funding source names")
	rec.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with forecast health",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Goals.ForecastAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatGoalViews(views))
			return nil
		},
	}
}

func newGoalInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show one goal's full forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}
			views, err := app.Goals.ForecastAll(ctx)
			if err != nil {
				return err
			}
			for _, v := range views {
				if v.Goal.ID == id {
					fmt.Println(formatter.FormatGoalDetail(v))
					return nil
				}
			}
			return fmt.Errorf("goal not found: %q", args[0])
		},
	}
}

func newGoalPauseCmd(app *App, pause bool) *cobra.Command {
	use, short, verb := "pause ID", "Pause a goal's contributions", "Paused"
	if !pause {
		use, short, verb = "resume ID", "Resume a paused goal", "Resumed"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Pause(ctx, id, pause); err != nil {
				return err
			}
			fmt.Printf("%s goal %s\n", verb, id)
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", id)
			return nil
		},
	}
}

func resolveGoal(ctx context.Context, app *App, input string) (string, error) {
	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}
	refs := make([]ref, 0, len(goals))
	for _, g := range goals {
		refs = append(refs, ref{ID: g.ID, Name: g.Name})
	}
	return resolveRef("goal", input, refs)
}
