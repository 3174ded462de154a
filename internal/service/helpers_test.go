package service

import (
	"database/sql"
	"testing"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/avelacorte/moneta/internal/testutil"
)

// repoSet wires every repository over one in-memory test database.
type repoSet struct {
	database  *sql.DB
	uow       db.UnitOfWork
	incomes   *repository.SQLiteIncomeRepo
	bills     *repository.SQLiteBillRepo
	debts     *repository.SQLiteDebtRepo
	purchases *repository.SQLitePurchaseRepo
	accounts  *repository.SQLiteAccountRepo
	goals     *repository.SQLiteGoalRepo
	pairs     *repository.SQLiteResolvedPairRepo
	versions  *repository.SQLitePlanVersionRepo
}

func newRepoSet(t *testing.T) *repoSet {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &repoSet{
		database:  database,
		uow:       testutil.NewTestUoW(database),
		incomes:   repository.NewSQLiteIncomeRepo(database),
		bills:     repository.NewSQLiteBillRepo(database),
		debts:     repository.NewSQLiteDebtRepo(database),
		purchases: repository.NewSQLitePurchaseRepo(database),
		accounts:  repository.NewSQLiteAccountRepo(database),
		goals:     repository.NewSQLiteGoalRepo(database),
		pairs:     repository.NewSQLiteResolvedPairRepo(database),
		versions:  repository.NewSQLitePlanVersionRepo(database),
	}
}
