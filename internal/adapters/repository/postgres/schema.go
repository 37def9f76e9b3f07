package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

const createCompaniesTable = `
	CREATE TABLE IF NOT EXISTS companies (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		website TEXT,
		logo_url TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// The votes table name is a parameter so the same definition serves both
// the fresh-install path and the legacy rename migration.
const createVotesTable = `
	CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		voter_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		company_id BIGINT NOT NULL REFERENCES companies(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type seedCompany struct {
	name    string
	website string
	logoURL string
}

var defaultCompanies = []seedCompany{
	{name: "Acme Corporation", website: "acme.com", logoURL: "https://logo.clearbit.com/acme.com"},
	{name: "Globex", website: "globex.com", logoURL: "https://logo.clearbit.com/globex.com"},
}

// EnsureSchema brings the database to the current layout. A legacy votes
// table without the email/phone unique constraints is renamed aside and
// replaced by a constrained one; any failure of that rename sequence is
// treated as "migration already applied" and only logged.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createCompaniesTable); err != nil {
		return fmt.Errorf("failed to create companies table: %w", err)
	}

	exists, err := tableExists(ctx, db, "votes")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(createVotesTable, "votes")); err != nil {
			return fmt.Errorf("failed to create votes table: %w", err)
		}
		return nil
	}

	constrained, err := votesEmailConstrained(ctx, db)
	if err != nil {
		return err
	}
	if !constrained {
		migrateLegacyVotes(ctx, db)
	}
	return nil
}

// SeedDefaultCompanies inserts the default company set. ON CONFLICT DO
// NOTHING keeps repeated startups idempotent.
func SeedDefaultCompanies(ctx context.Context, db *sql.DB) error {
	query := `
		INSERT INTO companies (name, website, logo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`
	for _, c := range defaultCompanies {
		if _, err := db.ExecContext(ctx, query, c.name, c.website, c.logoURL); err != nil {
			return fmt.Errorf("failed to seed company %q: %w", c.name, err)
		}
	}
	return nil
}

func migrateLegacyVotes(ctx context.Context, db *sql.DB) {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(createVotesTable, "votes_migrated")); err != nil {
		log.Printf("votes migration: failed to stage constrained table, assuming already migrated: %v", err)
		return
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("votes migration: failed to begin transaction: %v", err)
		return
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `ALTER TABLE votes RENAME TO votes_legacy`); err != nil {
		log.Printf("votes migration: rename aside failed, assuming already migrated: %v", err)
		return
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE votes_migrated RENAME TO votes`); err != nil {
		log.Printf("votes migration: promote failed, assuming already migrated: %v", err)
		return
	}
	if err := tx.Commit(); err != nil {
		log.Printf("votes migration: commit failed, assuming already migrated: %v", err)
		return
	}

	log.Println("votes migration: legacy table renamed to votes_legacy, constrained table promoted")
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return exists, nil
}

func votesEmailConstrained(ctx context.Context, db *sql.DB) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.constraint_column_usage ccu
				ON ccu.constraint_name = tc.constraint_name
			WHERE tc.table_name = 'votes'
				AND tc.constraint_type = 'UNIQUE'
				AND ccu.column_name = 'email'
		)
	`
	var constrained bool
	if err := db.QueryRowContext(ctx, query).Scan(&constrained); err != nil {
		return false, fmt.Errorf("failed to inspect votes constraints: %w", err)
	}
	return constrained, nil
}
