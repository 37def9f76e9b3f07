package ports

import (
	"context"

	"github.com/companyvote/api/internal/core/domain"
)

type LeaderboardRepository interface {
	// ActiveStandings returns one row per active company with its vote
	// count, ordered by votes descending then name ascending.
	ActiveStandings(ctx context.Context) ([]domain.CompanyStanding, error)
}

type LeaderboardService interface {
	Standings(ctx context.Context) (*domain.Leaderboard, error)
}
