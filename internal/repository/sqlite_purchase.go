package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLitePurchaseRepo implements PurchaseRepo using a SQLite database.
type SQLitePurchaseRepo struct {
	db db.DBTX
}

// NewSQLitePurchaseRepo creates a new SQLitePurchaseRepo.
func NewSQLitePurchaseRepo(conn db.DBTX) *SQLitePurchaseRepo {
	return &SQLitePurchaseRepo{db: conn}
}

const purchaseColumns = `id, item, amount, category, purchase_date, ownership,
	reconciliation_status, notes, archived_at, created_at, updated_at`

func (r *SQLitePurchaseRepo) Create(ctx context.Context, p *domain.Purchase) error {
	query := `INSERT INTO purchases (` + purchaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Item,
		p.Amount,
		p.Category,
		p.PurchaseDate.Format(dateLayout),
		p.Ownership,
		string(p.ReconciliationStatus),
		p.Notes,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting purchase: %w", err)
	}
	return nil
}

func (r *SQLitePurchaseRepo) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPurchase(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("purchase not found")
	}
	return p, err
}

func (r *SQLitePurchaseRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY purchase_date, created_at, id`
	if !includeArchived {
		query = `SELECT ` + purchaseColumns + ` FROM purchases WHERE archived_at IS NULL ORDER BY purchase_date, created_at, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows.Scan)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchases: %w", err)
	}
	return purchases, nil
}

func (r *SQLitePurchaseRepo) Update(ctx context.Context, p *domain.Purchase) error {
	query := `UPDATE purchases SET item = ?, amount = ?, category = ?, purchase_date = ?, ownership = ?,
		reconciliation_status = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Item,
		p.Amount,
		p.Category,
		p.PurchaseDate.Format(dateLayout),
		p.Ownership,
		string(p.ReconciliationStatus),
		p.Notes,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating purchase: %w", err)
	}
	return nil
}

func (r *SQLitePurchaseRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE purchases SET archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving purchase: %w", err)
	}
	return nil
}

func (r *SQLitePurchaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting purchase: %w", err)
	}
	return nil
}

func scanPurchase(scan func(...any) error) (*domain.Purchase, error) {
	var p domain.Purchase
	var dateStr, statusStr, createdAtStr, updatedAtStr string
	var archivedAtStr sql.NullString

	err := scan(
		&p.ID, &p.Item, &p.Amount, &p.Category,
		&dateStr, &p.Ownership, &statusStr, &p.Notes,
		&archivedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning purchase: %w", err)
	}

	p.ReconciliationStatus = domain.ReconciliationStatus(statusStr)
	p.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)

	if p.PurchaseDate, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing purchase_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
