package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteAccountRepo implements AccountRepo using a SQLite database.
type SQLiteAccountRepo struct {
	db db.DBTX
}

// NewSQLiteAccountRepo creates a new SQLiteAccountRepo.
func NewSQLiteAccountRepo(conn db.DBTX) *SQLiteAccountRepo {
	return &SQLiteAccountRepo{db: conn}
}

func (r *SQLiteAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, name, class, liquid, balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.Class),
		boolToInt(a.Liquid),
		a.Balance,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

func (r *SQLiteAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, name, class, liquid, balance, created_at FROM accounts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	return a, err
}

func (r *SQLiteAccountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT id, name, class, liquid, balance, created_at FROM accounts ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteAccountRepo) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET name = ?, class = ?, liquid = ?, balance = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.Name,
		string(a.Class),
		boolToInt(a.Liquid),
		a.Balance,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	return nil
}

func (r *SQLiteAccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

func scanAccount(scan func(...any) error) (*domain.Account, error) {
	var a domain.Account
	var classStr, createdAtStr string
	var liquid int

	err := scan(&a.ID, &a.Name, &classStr, &liquid, &a.Balance, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning account: %w", err)
	}

	a.Class = domain.AccountClass(classStr)
	a.Liquid = intToBool(liquid)

	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
