package services

import (
	"context"
	"math"
	"time"

	"github.com/companyvote/api/internal/core/domain"
	"github.com/companyvote/api/internal/core/ports"
)

type leaderboardService struct {
	repo ports.LeaderboardRepository
}

func NewLeaderboardService(repo ports.LeaderboardRepository) ports.LeaderboardService {
	return &leaderboardService{
		repo: repo,
	}
}

func (s *leaderboardService) Standings(ctx context.Context) (*domain.Leaderboard, error) {
	standings, err := s.repo.ActiveStandings(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, row := range standings {
		total += row.Votes
	}

	entries := make([]domain.LeaderboardEntry, 0, len(standings))
	for i, row := range standings {
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(float64(row.Votes)*100/float64(total)*10) / 10
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:       i + 1,
			CompanyID:  row.CompanyID,
			Name:       row.Name,
			Website:    row.Website,
			LogoURL:    row.LogoURL,
			Votes:      row.Votes,
			Percentage: percentage,
		})
	}

	return &domain.Leaderboard{
		Entries:     entries,
		TotalVotes:  total,
		GeneratedAt: time.Now(),
	}, nil
}
