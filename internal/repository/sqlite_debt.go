package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteDebtRepo implements DebtRepo using a SQLite database.
type SQLiteDebtRepo struct {
	db db.DBTX
}

// NewSQLiteDebtRepo creates a new SQLiteDebtRepo.
func NewSQLiteDebtRepo(conn db.DBTX) *SQLiteDebtRepo {
	return &SQLiteDebtRepo{db: conn}
}

const debtColumns = `id, name, kind, credit_limit, current_balance, statement_balance, pending_amount,
	minimum_payment_mode, fixed_minimum, minimum_percent, extra_payment, planned_spend,
	apr, due_day, statement_day, created_at, updated_at`

func (r *SQLiteDebtRepo) Create(ctx context.Context, d *domain.DebtAccount) error {
	query := `INSERT INTO debt_accounts (` + debtColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		string(d.Kind),
		nullableFloatToValue(d.CreditLimit),
		d.CurrentBalance,
		nullableFloatToValue(d.StatementBalance),
		d.PendingAmount,
		string(d.MinimumPaymentMode),
		d.FixedMinimum,
		d.MinimumPercent,
		d.ExtraPayment,
		d.PlannedSpend,
		d.APR,
		d.DueDay,
		d.StatementDay,
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting debt account: %w", err)
	}
	return nil
}

func (r *SQLiteDebtRepo) GetByID(ctx context.Context, id string) (*domain.DebtAccount, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_accounts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	d, err := scanDebt(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt account not found")
	}
	return d, err
}

func (r *SQLiteDebtRepo) List(ctx context.Context) ([]*domain.DebtAccount, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_accounts ORDER BY created_at, id`
	return r.queryDebts(ctx, query)
}

func (r *SQLiteDebtRepo) ListByKind(ctx context.Context, kind domain.DebtKind) ([]*domain.DebtAccount, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_accounts WHERE kind = ? ORDER BY created_at, id`
	return r.queryDebts(ctx, query, string(kind))
}

func (r *SQLiteDebtRepo) queryDebts(ctx context.Context, query string, args ...any) ([]*domain.DebtAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing debt accounts: %w", err)
	}
	defer rows.Close()

	var debts []*domain.DebtAccount
	for rows.Next() {
		d, err := scanDebt(rows.Scan)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debt accounts: %w", err)
	}
	return debts, nil
}

func (r *SQLiteDebtRepo) Update(ctx context.Context, d *domain.DebtAccount) error {
	query := `UPDATE debt_accounts SET name = ?, kind = ?, credit_limit = ?, current_balance = ?,
		statement_balance = ?, pending_amount = ?, minimum_payment_mode = ?, fixed_minimum = ?,
		minimum_percent = ?, extra_payment = ?, planned_spend = ?, apr = ?, due_day = ?,
		statement_day = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.Name,
		string(d.Kind),
		nullableFloatToValue(d.CreditLimit),
		d.CurrentBalance,
		nullableFloatToValue(d.StatementBalance),
		d.PendingAmount,
		string(d.MinimumPaymentMode),
		d.FixedMinimum,
		d.MinimumPercent,
		d.ExtraPayment,
		d.PlannedSpend,
		d.APR,
		d.DueDay,
		d.StatementDay,
		nowUTC(),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating debt account: %w", err)
	}
	return nil
}

func (r *SQLiteDebtRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM debt_accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting debt account: %w", err)
	}
	return nil
}

func scanDebt(scan func(...any) error) (*domain.DebtAccount, error) {
	var d domain.DebtAccount
	var kindStr, modeStr, createdAtStr, updatedAtStr string
	var limit, stmt sql.NullFloat64

	err := scan(
		&d.ID, &d.Name, &kindStr,
		&limit, &d.CurrentBalance, &stmt, &d.PendingAmount,
		&modeStr, &d.FixedMinimum, &d.MinimumPercent, &d.ExtraPayment, &d.PlannedSpend,
		&d.APR, &d.DueDay, &d.StatementDay,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning debt account: %w", err)
	}

	d.Kind = domain.DebtKind(kindStr)
	d.MinimumPaymentMode = domain.MinimumPaymentMode(modeStr)
	d.CreditLimit = parseNullableFloat(limit)
	d.StatementBalance = parseNullableFloat(stmt)

	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
