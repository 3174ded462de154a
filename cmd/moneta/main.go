package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avelacorte/moneta/internal/cli"
	"github.com/avelacorte/moneta/internal/cli/formatter"
	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/avelacorte/moneta/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.moneta/moneta.db
	dbPath := os.Getenv("MONETA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".moneta", "moneta.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Plain output when stdout is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableStyles()
	}

	// Wire repositories
	incomeRepo := repository.NewSQLiteIncomeRepo(database)
	billRepo := repository.NewSQLiteBillRepo(database)
	debtRepo := repository.NewSQLiteDebtRepo(database)
	purchaseRepo := repository.NewSQLitePurchaseRepo(database)
	accountRepo := repository.NewSQLiteAccountRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	pairRepo := repository.NewSQLiteResolvedPairRepo(database)
	versionRepo := repository.NewSQLitePlanVersionRepo(database)

	// Wire unit of work for transactional resolutions
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr
	var observers []service.UseCaseObserver
	if os.Getenv("MONETA_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	summarySvc := service.NewSummaryService(incomeRepo, billRepo, debtRepo, purchaseRepo, accountRepo, goalRepo, observers...)

	app := &cli.App{
		Ledger:    service.NewLedgerService(incomeRepo, billRepo, accountRepo, purchaseRepo),
		Summaries: summarySvc,
		Debts:     service.NewDebtService(debtRepo),
		Dupes:     service.NewDedupeService(purchaseRepo, pairRepo, uow, observers...),
		Goals:     service.NewGoalService(goalRepo),
		Plans:     service.NewPlanningService(summarySvc, versionRepo, goalRepo, purchaseRepo, observers...),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
