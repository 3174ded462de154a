package cli

import (
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/spf13/cobra"
)

// recurringFlags binds the shared amount/cadence flag set used by income,
// bill, and goal-contribution commands. Validation happens in the service
// layer; the flags only collect values.
type recurringFlags struct {
	amount   float64
	cadence  string
	interval int
	unit     string
}

func (f *recurringFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "Amount per occurrence")
	cmd.Flags().StringVar(&f.cadence, "cadence", "monthly", "Cadence (weekly|biweekly|monthly|quarterly|yearly|custom|one_time)")
	cmd.Flags().IntVar(&f.interval, "every", 0, "Custom cadence interval (with --cadence custom)")
	cmd.Flags().StringVar(&f.unit, "unit", "", "Custom cadence unit (days|weeks|months|years)")
}

func (f *recurringFlags) toRecurring() domain.RecurringAmount {
	return domain.RecurringAmount{
		Amount:         f.amount,
		Cadence:        domain.Cadence(f.cadence),
		CustomInterval: f.interval,
		CustomUnit:     domain.CadenceUnit(f.unit),
	}
}
