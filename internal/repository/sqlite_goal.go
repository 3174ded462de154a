package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, name, target_amount, current_amount, target_date,
	amount, cadence, custom_interval, custom_unit, funding_sources, paused, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		nullableTimeToString(g.TargetDate, dateLayout),
		g.Contribution.Amount,
		string(g.Contribution.Cadence),
		g.Contribution.CustomInterval,
		string(g.Contribution.CustomUnit),
		joinList(g.FundingSources),
		boolToInt(g.Paused),
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	g, err := scanGoal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found")
	}
	return g, err
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET name = ?, target_amount = ?, current_amount = ?, target_date = ?,
		amount = ?, cadence = ?, custom_interval = ?, custom_unit = ?, funding_sources = ?,
		paused = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		nullableTimeToString(g.TargetDate, dateLayout),
		g.Contribution.Amount,
		string(g.Contribution.Cadence),
		g.Contribution.CustomInterval,
		string(g.Contribution.CustomUnit),
		joinList(g.FundingSources),
		boolToInt(g.Paused),
		nowUTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func scanGoal(scan func(...any) error) (*domain.Goal, error) {
	var g domain.Goal
	var cadenceStr, unitStr, sourcesStr, createdAtStr, updatedAtStr string
	var targetDateStr sql.NullString
	var paused int

	err := scan(
		&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &targetDateStr,
		&g.Contribution.Amount, &cadenceStr, &g.Contribution.CustomInterval, &unitStr,
		&sourcesStr, &paused, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Contribution.Cadence = domain.Cadence(cadenceStr)
	g.Contribution.CustomUnit = domain.CadenceUnit(unitStr)
	g.FundingSources = splitList(sourcesStr)
	g.Paused = intToBool(paused)
	g.TargetDate = parseNullableTime(targetDateStr, dateLayout)

	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}
