package cli

import (
	"github.com/avelacorte/moneta/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ledger    service.LedgerService
	Summaries service.SummaryService
	Debts     service.DebtService
	Dupes     service.DedupeService
	Goals     service.GoalService
	Plans     service.PlanningService
}

// NewRootCmd creates the top-level "moneta" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "moneta",
		Short: "Personal-finance projection and decision support",
	}

	root.AddCommand(
		newStatusCmd(app),
		newIncomeCmd(app),
		newBillCmd(app),
		newAccountCmd(app),
		newPurchaseCmd(app),
		newDebtCmd(app),
		newDupesCmd(app),
		newGoalCmd(app),
		newPlanCmd(app),
	)

	return root
}
