package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
)

// SQLiteResolvedPairRepo implements ResolvedPairRepo using a SQLite database.
// Pairs are stored in normalized order (a_id < b_id); Add re-normalizes
// defensively so lookups by either order hit the same row.
type SQLiteResolvedPairRepo struct {
	db db.DBTX
}

// NewSQLiteResolvedPairRepo creates a new SQLiteResolvedPairRepo.
func NewSQLiteResolvedPairRepo(conn db.DBTX) *SQLiteResolvedPairRepo {
	return &SQLiteResolvedPairRepo{db: conn}
}

func (r *SQLiteResolvedPairRepo) Add(ctx context.Context, pair domain.ResolvedPair) error {
	normalized := domain.NewResolvedPair(pair.AID, pair.BID, pair.Kind, pair.ResolvedAt)
	query := `INSERT INTO resolved_pairs (a_id, b_id, kind, resolved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(a_id, b_id) DO UPDATE SET kind = excluded.kind, resolved_at = excluded.resolved_at`
	_, err := r.db.ExecContext(ctx, query,
		normalized.AID,
		normalized.BID,
		string(normalized.Kind),
		normalized.ResolvedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resolved pair: %w", err)
	}
	return nil
}

func (r *SQLiteResolvedPairRepo) List(ctx context.Context) ([]domain.ResolvedPair, error) {
	query := `SELECT a_id, b_id, kind, resolved_at FROM resolved_pairs ORDER BY a_id, b_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing resolved pairs: %w", err)
	}
	defer rows.Close()

	var pairs []domain.ResolvedPair
	for rows.Next() {
		var p domain.ResolvedPair
		var kindStr, resolvedAtStr string
		if err := rows.Scan(&p.AID, &p.BID, &kindStr, &resolvedAtStr); err != nil {
			return nil, fmt.Errorf("scanning resolved pair: %w", err)
		}
		p.Kind = domain.ResolutionKind(kindStr)
		if p.ResolvedAt, err = time.Parse(time.RFC3339, resolvedAtStr); err != nil {
			return nil, fmt.Errorf("parsing resolved_at: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resolved pairs: %w", err)
	}
	return pairs, nil
}

func (r *SQLiteResolvedPairRepo) Has(ctx context.Context, a, b string) (bool, error) {
	if b < a {
		a, b = b, a
	}
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resolved_pairs WHERE a_id = ? AND b_id = ?`,
		a, b,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking resolved pair: %w", err)
	}
	return count > 0, nil
}
