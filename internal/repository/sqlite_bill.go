package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteBillRepo implements BillRepo using a SQLite database.
type SQLiteBillRepo struct {
	db db.DBTX
}

// NewSQLiteBillRepo creates a new SQLiteBillRepo.
func NewSQLiteBillRepo(conn db.DBTX) *SQLiteBillRepo {
	return &SQLiteBillRepo{db: conn}
}

func (r *SQLiteBillRepo) Create(ctx context.Context, b *domain.Bill) error {
	query := `INSERT INTO bills (id, name, category, amount, cadence, custom_interval, custom_unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Category,
		b.Recurring.Amount,
		string(b.Recurring.Cadence),
		b.Recurring.CustomInterval,
		string(b.Recurring.CustomUnit),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting bill: %w", err)
	}
	return nil
}

func (r *SQLiteBillRepo) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	query := `SELECT id, name, category, amount, cadence, custom_interval, custom_unit, created_at
		FROM bills WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b, err := scanBill(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill not found")
	}
	return b, err
}

func (r *SQLiteBillRepo) List(ctx context.Context) ([]*domain.Bill, error) {
	query := `SELECT id, name, category, amount, cadence, custom_interval, custom_unit, created_at
		FROM bills ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*domain.Bill
	for rows.Next() {
		b, err := scanBill(rows.Scan)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bills: %w", err)
	}
	return bills, nil
}

func (r *SQLiteBillRepo) Update(ctx context.Context, b *domain.Bill) error {
	query := `UPDATE bills SET name = ?, category = ?, amount = ?, cadence = ?, custom_interval = ?, custom_unit = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.Name,
		b.Category,
		b.Recurring.Amount,
		string(b.Recurring.Cadence),
		b.Recurring.CustomInterval,
		string(b.Recurring.CustomUnit),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating bill: %w", err)
	}
	return nil
}

func (r *SQLiteBillRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}
	return nil
}

func scanBill(scan func(...any) error) (*domain.Bill, error) {
	var b domain.Bill
	var cadenceStr, unitStr, createdAtStr string

	err := scan(
		&b.ID, &b.Name, &b.Category, &b.Recurring.Amount,
		&cadenceStr, &b.Recurring.CustomInterval, &unitStr,
		&createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning bill: %w", err)
	}

	b.Recurring.Cadence = domain.Cadence(cadenceStr)
	b.Recurring.CustomUnit = domain.CadenceUnit(unitStr)

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &b, nil
}
