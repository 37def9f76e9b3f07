package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type leaderboardRepository struct {
	db *sql.DB
}

func NewLeaderboardRepository(db *sql.DB) ports.LeaderboardRepository {
	return &leaderboardRepository{
		db: db,
	}
}

func (r *leaderboardRepository) ActiveStandings(ctx context.Context) ([]domain.CompanyStanding, error) {
	query := `
		SELECT c.id, c.name, c.website, c.logo_url, COUNT(v.id) AS vote_count
		FROM companies c
		LEFT JOIN votes v ON v.company_id = c.id
		WHERE c.active
		GROUP BY c.id
		ORDER BY vote_count DESC, c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}
	defer rows.Close()

	standings := []domain.CompanyStanding{}
	for rows.Next() {
		var row domain.CompanyStanding
		if err := rows.Scan(&row.CompanyID, &row.Name, &row.Website, &row.LogoURL, &row.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}
	return standings, nil
}
