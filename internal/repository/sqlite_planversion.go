package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLitePlanVersionRepo implements PlanVersionRepo using a SQLite database.
type SQLitePlanVersionRepo struct {
	db db.DBTX
}

// NewSQLitePlanVersionRepo creates a new SQLitePlanVersionRepo.
func NewSQLitePlanVersionRepo(conn db.DBTX) *SQLitePlanVersionRepo {
	return &SQLitePlanVersionRepo{db: conn}
}

const planVersionColumns = `id, month, name, expected_income, fixed_commitments, variable_spending_cap, selected, updated_at`

func (r *SQLitePlanVersionRepo) Upsert(ctx context.Context, p *domain.PlanVersion) error {
	query := `INSERT INTO plan_versions (` + planVersionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(month, name) DO UPDATE SET
			expected_income = excluded.expected_income,
			fixed_commitments = excluded.fixed_commitments,
			variable_spending_cap = excluded.variable_spending_cap,
			selected = excluded.selected,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Month,
		string(p.Name),
		p.ExpectedIncome,
		p.FixedCommitments,
		p.VariableSpendingCap,
		boolToInt(p.Selected),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting plan version: %w", err)
	}
	return nil
}

func (r *SQLitePlanVersionRepo) GetByMonthName(ctx context.Context, month string, name domain.PlanVersionName) (*domain.PlanVersion, error) {
	query := `SELECT ` + planVersionColumns + ` FROM plan_versions WHERE month = ? AND name = ?`
	row := r.db.QueryRowContext(ctx, query, month, string(name))

	p, err := scanPlanVersion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan version not found")
	}
	return p, err
}

func (r *SQLitePlanVersionRepo) ListByMonth(ctx context.Context, month string) ([]*domain.PlanVersion, error) {
	// Canonical display order: base, conservative, aggressive.
	query := `SELECT ` + planVersionColumns + ` FROM plan_versions WHERE month = ?
		ORDER BY CASE name WHEN 'base' THEN 0 WHEN 'conservative' THEN 1 ELSE 2 END`
	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("listing plan versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.PlanVersion
	for rows.Next() {
		p, err := scanPlanVersion(rows.Scan)
		if err != nil {
			return nil, err
		}
		versions = append(versions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan versions: %w", err)
	}
	return versions, nil
}

// Select enforces the one-selected-version-per-month invariant: the
// month's other versions are deselected in the same call.
func (r *SQLitePlanVersionRepo) Select(ctx context.Context, month string, name domain.PlanVersionName) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM plan_versions WHERE month = ? AND name = ?`,
		month, string(name),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("selecting plan version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("plan version not found")
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE plan_versions SET selected = (name = ?), updated_at = ? WHERE month = ?`,
		string(name), nowUTC(), month,
	)
	if err != nil {
		return fmt.Errorf("selecting plan version: %w", err)
	}
	return nil
}

func (r *SQLitePlanVersionRepo) Delete(ctx context.Context, month string, name domain.PlanVersionName) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_versions WHERE month = ? AND name = ?`, month, string(name))
	if err != nil {
		return fmt.Errorf("deleting plan version: %w", err)
	}
	return nil
}

func scanPlanVersion(scan func(...any) error) (*domain.PlanVersion, error) {
	var p domain.PlanVersion
	var nameStr, updatedAtStr string
	var selected int

	err := scan(
		&p.ID, &p.Month, &nameStr,
		&p.ExpectedIncome, &p.FixedCommitments, &p.VariableSpendingCap,
		&selected, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan version: %w", err)
	}

	p.Name = domain.PlanVersionName(nameStr)
	p.Selected = intToBool(selected)

	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
