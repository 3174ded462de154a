package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteIncomeRepo implements IncomeRepo using a SQLite database.
// Constructed over db.DBTX so the same repository works standalone or
// inside a unit-of-work transaction.
type SQLiteIncomeRepo struct {
	db db.DBTX
}

// NewSQLiteIncomeRepo creates a new SQLiteIncomeRepo.
func NewSQLiteIncomeRepo(conn db.DBTX) *SQLiteIncomeRepo {
	return &SQLiteIncomeRepo{db: conn}
}

func (r *SQLiteIncomeRepo) Create(ctx context.Context, i *domain.Income) error {
	query := `INSERT INTO incomes (id, name, amount, cadence, custom_interval, custom_unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Name,
		i.Recurring.Amount,
		string(i.Recurring.Cadence),
		i.Recurring.CustomInterval,
		string(i.Recurring.CustomUnit),
		i.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting income: %w", err)
	}
	return nil
}

func (r *SQLiteIncomeRepo) GetByID(ctx context.Context, id string) (*domain.Income, error) {
	query := `SELECT id, name, amount, cadence, custom_interval, custom_unit, created_at
		FROM incomes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	i, err := scanIncome(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("income not found")
	}
	return i, err
}

func (r *SQLiteIncomeRepo) List(ctx context.Context) ([]*domain.Income, error) {
	query := `SELECT id, name, amount, cadence, custom_interval, custom_unit, created_at
		FROM incomes ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*domain.Income
	for rows.Next() {
		i, err := scanIncome(rows.Scan)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating incomes: %w", err)
	}
	return incomes, nil
}

func (r *SQLiteIncomeRepo) Update(ctx context.Context, i *domain.Income) error {
	query := `UPDATE incomes SET name = ?, amount = ?, cadence = ?, custom_interval = ?, custom_unit = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.Name,
		i.Recurring.Amount,
		string(i.Recurring.Cadence),
		i.Recurring.CustomInterval,
		string(i.Recurring.CustomUnit),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating income: %w", err)
	}
	return nil
}

func (r *SQLiteIncomeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}
	return nil
}

func scanIncome(scan func(...any) error) (*domain.Income, error) {
	var i domain.Income
	var cadenceStr, unitStr, createdAtStr string

	err := scan(
		&i.ID, &i.Name, &i.Recurring.Amount,
		&cadenceStr, &i.Recurring.CustomInterval, &unitStr,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning income: %w", err)
	}

	i.Recurring.Cadence = domain.Cadence(cadenceStr)
	i.Recurring.CustomUnit = domain.CadenceUnit(unitStr)

	i.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &i, nil
}
