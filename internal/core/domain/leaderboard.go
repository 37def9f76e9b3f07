package domain

import "time"

// LeaderboardEntry carries a 1-based rank and a percentage rounded to one
// decimal place.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	CompanyID  int64   `json:"companyId"`
	Name       string  `json:"name"`
	Website    *string `json:"website,omitempty"`
	LogoURL    *string `json:"logoUrl,omitempty"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"leaderboard"`
	TotalVotes  int64              `json:"totalVotes"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// CompanyStanding is the raw aggregation row the leaderboard is built from.
type CompanyStanding struct {
	CompanyID int64
	Name      string
	Website   *string
	LogoURL   *string
	Votes     int64
}
