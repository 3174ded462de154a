package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS incomes (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		amount          REAL NOT NULL DEFAULT 0,
		cadence         TEXT NOT NULL DEFAULT 'monthly'
		                CHECK(cadence IN ('weekly','biweekly','monthly','quarterly','yearly','custom','one_time')),
		custom_interval INTEGER NOT NULL DEFAULT 0,
		custom_unit     TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS bills (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		category        TEXT NOT NULL DEFAULT '',
		amount          REAL NOT NULL DEFAULT 0,
		cadence         TEXT NOT NULL DEFAULT 'monthly'
		                CHECK(cadence IN ('weekly','biweekly','monthly','quarterly','yearly','custom','one_time')),
		custom_interval INTEGER NOT NULL DEFAULT 0,
		custom_unit     TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS debt_accounts (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		kind                 TEXT NOT NULL CHECK(kind IN ('card','loan')),
		credit_limit         REAL,
		current_balance      REAL NOT NULL DEFAULT 0,
		statement_balance    REAL,
		pending_amount       REAL NOT NULL DEFAULT 0,
		minimum_payment_mode TEXT NOT NULL DEFAULT 'fixed'
		                     CHECK(minimum_payment_mode IN ('fixed','percent_plus_interest')),
		fixed_minimum        REAL NOT NULL DEFAULT 0,
		minimum_percent      REAL NOT NULL DEFAULT 0,
		extra_payment        REAL NOT NULL DEFAULT 0,
		planned_spend        REAL NOT NULL DEFAULT 0,
		apr                  REAL NOT NULL DEFAULT 0,
		due_day              INTEGER NOT NULL DEFAULT 1,
		statement_day        INTEGER NOT NULL DEFAULT 1,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS purchases (
		id                    TEXT PRIMARY KEY,
		item                  TEXT NOT NULL,
		amount                REAL NOT NULL DEFAULT 0,
		category              TEXT NOT NULL DEFAULT '',
		purchase_date         TEXT NOT NULL,
		ownership             TEXT NOT NULL DEFAULT '',
		reconciliation_status TEXT NOT NULL DEFAULT 'pending'
		                      CHECK(reconciliation_status IN ('pending','posted','reconciled')),
		notes                 TEXT NOT NULL DEFAULT '',
		archived_at           TEXT,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_purchases_ownership ON purchases(ownership)`,

	`CREATE TABLE IF NOT EXISTS accounts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		class      TEXT NOT NULL DEFAULT 'asset' CHECK(class IN ('asset','liability')),
		liquid     INTEGER NOT NULL DEFAULT 0,
		balance    REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		target_amount   REAL NOT NULL DEFAULT 0,
		current_amount  REAL NOT NULL DEFAULT 0,
		target_date     TEXT,
		amount          REAL NOT NULL DEFAULT 0,
		cadence         TEXT NOT NULL DEFAULT 'monthly'
		                CHECK(cadence IN ('weekly','biweekly','monthly','quarterly','yearly','custom','one_time')),
		custom_interval INTEGER NOT NULL DEFAULT 0,
		custom_unit     TEXT NOT NULL DEFAULT '',
		funding_sources TEXT NOT NULL DEFAULT '',
		paused          INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_versions (
		id                    TEXT PRIMARY KEY,
		month                 TEXT NOT NULL,
		name                  TEXT NOT NULL CHECK(name IN ('base','conservative','aggressive')),
		expected_income       REAL NOT NULL DEFAULT 0,
		fixed_commitments     REAL NOT NULL DEFAULT 0,
		variable_spending_cap REAL NOT NULL DEFAULT 0,
		selected              INTEGER NOT NULL DEFAULT 0,
		updated_at            TEXT NOT NULL,
		UNIQUE(month, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_versions_month ON plan_versions(month)`,

	`CREATE TABLE IF NOT EXISTS resolved_pairs (
		a_id        TEXT NOT NULL,
		b_id        TEXT NOT NULL,
		kind        TEXT NOT NULL CHECK(kind IN ('merged','archived','intentional')),
		resolved_at TEXT NOT NULL,
		PRIMARY KEY (a_id, b_id)
	)`,
}
