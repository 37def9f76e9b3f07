package domain

import "time"

type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Website   *string   `json:"website,omitempty"`
	LogoURL   *string   `json:"logoUrl,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyOption is the trimmed-down row shown on the public voting page.
type CompanyOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyWithVotes is the admin listing row; VoteCount is computed, zero
// when no vote references the company.
type CompanyWithVotes struct {
	Company
	VoteCount int64 `json:"voteCount"`
}
